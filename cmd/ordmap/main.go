package main

import (
	"fmt"
	"log"

	"github.com/tagirhamitov/hash-map/pkg/hash/fnv1a"
	"github.com/tagirhamitov/hash-map/pkg/hashmap/ordered"
)

func main() {
	m := ordered.NewMapWithHash[string, int](func(key string) uint64 {
		return fnv1a.SumString64(key)
	})

	for i, city := range []string{"tokyo", "lagos", "bogota", "oslo", "tokyo"} {
		inserted := m.Insert(city, i)
		fmt.Printf("insert %q -> %d (inserted=%v)\n", city, i, inserted)
	}

	fmt.Printf("len=%d, load=%.2f\n", m.Len(), m.PercentFull())

	pop, err := m.At("lagos")
	errCheck(err)
	fmt.Printf("at %q -> %d\n", "lagos", pop)

	_, err = m.At("nairobi")
	fmt.Printf("at %q -> %v\n", "nairobi", err)

	m.Del("bogota")
	*m.Ref("oslo") = 42

	fmt.Println("iteration order after delete:")
	for city, v := range m.All() {
		fmt.Printf("  %q -> %d\n", city, v)
	}
}

func errCheck(err error) {
	if err != nil {
		log.Panicf("got error: %v\n", err)
	}
}
