// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "encoding/binary"

// siphashKey holds the 128-bit key used to seed every SipHash-2-4
// computation in this process. Acquiring it from an OS CSPRNG happens
// once, in InitRuntime; per §1 anything past that 16-byte seed is out
// of this package's scope.
type siphashKey struct {
	k0, k1 uint64
}

func rotl(x uint64, b uint) uint64 {
	return (x << b) | (x >> (64 - b))
}

// sipRound is one SIPROUND of the reference algorithm.
func sipRound(v0, v1, v2, v3 *uint64) {
	*v0 += *v1
	*v1 = rotl(*v1, 13)
	*v1 ^= *v0
	*v0 = rotl(*v0, 32)
	*v2 += *v3
	*v3 = rotl(*v3, 16)
	*v3 ^= *v2
	*v0 += *v3
	*v3 = rotl(*v3, 21)
	*v3 ^= *v0
	*v2 += *v1
	*v1 = rotl(*v1, 17)
	*v1 ^= *v2
	*v2 = rotl(*v2, 32)
}

// siphash24 computes SipHash-2-4 over data under key, matching the
// reference runtime's siphash24 byte-for-byte (2 compression rounds
// per 8-byte block, 4 finalization rounds).
func siphash24(key *siphashKey, data []byte) uint64 {
	v0 := uint64(0x736f6d6570736575) ^ key.k0
	v1 := uint64(0x646f72616e646f6d) ^ key.k1
	v2 := uint64(0x6c7967656e657261) ^ key.k0
	v3 := uint64(0x7465646279746573) ^ key.k1

	length := len(data)
	end := length - (length % 8)

	for i := 0; i < end; i += 8 {
		m := binary.LittleEndian.Uint64(data[i : i+8])
		v3 ^= m
		sipRound(&v0, &v1, &v2, &v3)
		sipRound(&v0, &v1, &v2, &v3)
		v0 ^= m
	}

	var last [8]byte
	copy(last[:], data[end:])
	last[7] = byte(length)
	m := binary.LittleEndian.Uint64(last[:])
	v3 ^= m
	sipRound(&v0, &v1, &v2, &v3)
	sipRound(&v0, &v1, &v2, &v3)
	v0 ^= m

	v2 ^= 0xff
	sipRound(&v0, &v1, &v2, &v3)
	sipRound(&v0, &v1, &v2, &v3)
	sipRound(&v0, &v1, &v2, &v3)
	sipRound(&v0, &v1, &v2, &v3)

	return v0 ^ v1 ^ v2 ^ v3
}

func siphashString(key *siphashKey, s string) uint64 {
	return siphash24(key, []byte(s))
}

func siphashBytes(key *siphashKey, b []byte) uint64 {
	return siphash24(key, b)
}
