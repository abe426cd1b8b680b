package contract

// maintaining index keys for querying data by author and owner

import (
	"fmt"
	"strconv"
)

// chunkCounterKey stores the number of chunks for a base index.
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

func getChunkCount(st State, baseKey string) int {
	ptr := st.Get(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

func setChunkCount(st State, baseKey string, n int) {
	st.Set(chunkCounterKey(baseKey), strconv.Itoa(n))
}

// addIDToIndex appends id to the last chunk, opening a new one when it is full.
// Ids are packed as 8 byte little-endian words. Callers only ever add freshly
// allocated ids, so there is no duplicate scan.
func addIDToIndex(st State, baseKey string, id uint64) {
	var word [8]byte
	packU64LEInline(id, word[:])

	chunks := getChunkCount(st, baseKey)
	if chunks > 0 {
		key := chunkKey(baseKey, chunks-1)
		cur := ""
		if ptr := st.Get(key); ptr != nil {
			cur = *ptr
		}
		if len(cur)/8 < maxChunkSize {
			st.Set(key, cur+string(word[:]))
			return
		}
	}
	st.Set(chunkKey(baseKey, chunks), string(word[:]))
	setChunkCount(st, baseKey, chunks+1)
}

// getIDsFromIndex collects all ids across all chunks in insertion order.
func getIDsFromIndex(st State, baseKey string) ([]uint64, error) {
	all := []uint64{}
	chunks := getChunkCount(st, baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := st.Get(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		raw := *ptr
		if len(raw)%8 != 0 {
			return nil, fmt.Errorf("index chunk %s: corrupt length %d", key, len(raw))
		}
		for off := 0; off < len(raw); off += 8 {
			all = append(all, unpackU64LE([]byte(raw[off:off+8])))
		}
	}
	return all, nil
}
