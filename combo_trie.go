package weighttab

import (
	"strconv"
	"strings"

	"github.com/derekparker/trie"
)

// trieStore keeps combination results in a prefix trie keyed by the
// decimal encoding of the input tuple, e.g. (3,1) => "3,1". This
// mirrors how a serialized table would key its entries and keeps
// memory proportional to the number of stored combinations.
type trieStore struct {
	entries int
	keys    *trie.Trie
}

func newTrieStore() *trieStore {
	return &trieStore{keys: trie.New()}
}

func tupleKey(inputs []int) string {
	var sb strings.Builder
	for i, in := range inputs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(in))
	}
	return sb.String()
}

func (s *trieStore) put(inputs []int, value float64) {
	s.keys.Add(tupleKey(inputs), value)
	s.entries++
}

func (s *trieStore) get(inputs []int) (float64, bool) {
	node, ok := s.keys.Find(tupleKey(inputs))
	if !ok {
		return 0, false
	}
	value, ok := node.Meta().(float64)
	return value, ok
}

func (s *trieStore) stats() comboStoreStats {
	return comboStoreStats{
		Backend:    "sparse",
		Entries:    s.entries,
		TotalSlots: s.entries,
	}
}
