// The ssh package implements the ssh wire format for signed data, as
// used by ssh-keygen -Y sign. Seals over receipt journals use this
// format, so that an Ed25519 seal is also a valid ssh signature over
// the journal hash.
package ssh

import (
	"bytes"
	"encoding/binary"
	"log"

	"sigsum.org/receipt-go/pkg/crypto"
)

const (
	int32Max = (1 << 31) - 1
)

func serializeString(s []byte) []byte {
	if len(s) > int32Max {
		log.Panicf("string too large for ssh, length %d", len(s))
	}
	buffer := make([]byte, 4+len(s))
	binary.BigEndian.PutUint32(buffer, uint32(len(s)))
	copy(buffer[4:], s)
	return buffer
}

func SignedDataFromHash(namespace string, hash *crypto.Hash) []byte {
	return bytes.Join([][]byte{
		[]byte("SSHSIG"),
		serializeString([]byte(namespace)),
		serializeString([]byte{}), // Empty reserved string
		serializeString([]byte("sha256")),
		serializeString(hash[:])}, nil)
}

func SignedData(namespace string, msg []byte) []byte {
	hash := crypto.HashBytes(msg)
	return SignedDataFromHash(namespace, &hash)
}
