package contract

import "nfc_contract/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// unpackU64LE reverses packU64LEInline.
func unpackU64LE(src []byte) uint64 {
	return uint64(src[0]) |
		uint64(src[1])<<8 |
		uint64(src[2])<<16 |
		uint64(src[3])<<24 |
		uint64(src[4])<<32 |
		uint64(src[5])<<40 |
		uint64(src[6])<<48 |
		uint64(src[7])<<56
}

// idKey builds a 9 byte key: one prefix byte plus the id.
func idKey(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// projectKey builds a storage key string for a project by ID.
func projectKey(id uint64) string {
	return idKey(kProjectMeta, id)
}

// projectStatusKey sits next to the meta key so status flips rewrite only a few bytes.
func projectStatusKey(id uint64) string {
	return idKey(kProjectStatus, id)
}

// tokenKey builds the storage key of a token.
func tokenKey(id uint64) string {
	return idKey(kToken, id)
}

// ownerBalanceKey mixes the prefix with the raw 20 address bytes.
func ownerBalanceKey(owner sdk.Address) string {
	buf := make([]byte, 0, 1+len(owner))
	buf = append(buf, kOwnerBalance)
	buf = append(buf, owner.Bytes()...)
	return string(buf)
}

func authorProjectsIndex(author sdk.Address) string {
	return idxAuthorProjects + author.Hex()
}

func ownerTokensIndex(owner sdk.Address) string {
	return idxOwnerTokens + owner.Hex()
}
