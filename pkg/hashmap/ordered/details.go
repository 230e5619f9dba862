package ordered

/*
	This package implements an insertion ordered hash map on top of a closed
	hashing (open addressing) slot table with plain linear probing. Deletion
	never leaves tombstones behind: the hole left by a removed entry is
	refilled by shifting later entries of the same probe run backwards. This
	is deletion algorithm R from Knuth volume 3, section 6.4. More on the
	technique can be found in the links provided below:
	1) https://en.wikipedia.org/wiki/Linear_probing#Deletion
	2) http://codecapsule.com/2013/11/17/robin-hood-hashing-backward-shift-deletion/
	The basic principle is:
	-----------------------
	1) Every key probes linearly from its hash reduced to the table size.
	2) An entry lives in the first free slot on its probe path, so a lookup
	   may stop at the first empty slot it meets.
	3) Removing an entry opens a hole in the middle of other keys' probe
	   runs. Scanning forward from the hole, any entry whose home position
	   does not lie between the hole and its current slot is moved into the
	   hole and the scan continues from the slot it vacated; the first empty
	   slot ends the run. Entries whose home does lie in between stay put
	   and the scan passes over them.
	4) Iteration never touches the slot table. All live entries hang off an
	   intrusive doubly linked list in insertion order, closed by a sentinel
	   that lives as long as the map does.
*/
