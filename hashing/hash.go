package hashing

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/spaolacci/murmur3"

	"github.com/underbar-go/underbar/commonerrors"
)

const (
	HashMd5    = "MD5"
	HashSha256 = "SHA256"
	HashSha1   = "SHA1"
	HashMurmur = "Murmur"
	HashXXHash = "xxhash" // https://github.com/OneOfOne/xxhash
	bespoke    = "bespoke"
)

var hexHashRegex = regexp.MustCompile(`^([a-fA-F0-9]{2}){8,}$`)

type hashingAlgo struct {
	Hash hash.Hash
	Type string
}

func (h *hashingAlgo) Calculate(r io.Reader) (hashN string, err error) {
	if r == nil {
		err = commonerrors.UndefinedParameter("missing reader")
		return
	}
	defer h.Hash.Reset()
	_, err = io.Copy(h.Hash, r)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not read data to hash")
		return
	}
	hashN = hex.EncodeToString(h.Hash.Sum(nil))
	return
}

func (h *hashingAlgo) GetType() string {
	return h.Type
}

// NewHashingAlgorithm returns the hashing algorithm of type htype.
func NewHashingAlgorithm(htype string) (IHash, error) {
	var algo hash.Hash
	switch htype {
	case HashMd5:
		algo = md5.New() //nolint:gosec
	case HashSha1:
		algo = sha1.New() //nolint:gosec
	case HashSha256:
		algo = sha256.New()
	case HashMurmur:
		algo = murmur3.New64()
	case HashXXHash:
		algo = xxhash.New64()
	default:
		return nil, commonerrors.Newf(commonerrors.ErrNotFound, "unknown hashing algorithm [%v]", htype)
	}
	return &hashingAlgo{
		Hash: algo,
		Type: htype,
	}, nil
}

// NewBespokeHashingAlgorithm wraps any hash.Hash into an IHash.
func NewBespokeHashingAlgorithm(algorithm hash.Hash) (IHash, error) {
	if algorithm == nil {
		return nil, commonerrors.UndefinedParameter("missing hashing algorithm")
	}
	return &hashingAlgo{
		Hash: algorithm,
		Type: bespoke,
	}, nil
}

// CalculateStringHash returns the digest of text, or an empty string if it could not be computed.
func CalculateStringHash(hashing IHash, text string) string {
	if hashing == nil {
		return ""
	}
	digest, err := hashing.Calculate(strings.NewReader(text))
	if err != nil {
		return ""
	}
	return digest
}

// CalculateHash returns the digest of text using the algorithm htype, or an empty string if it is unknown.
func CalculateHash(text, htype string) string {
	hashing, err := NewHashingAlgorithm(htype)
	if err != nil {
		return ""
	}
	return CalculateStringHash(hashing, text)
}

func CalculateMD5Hash(text string) string {
	return CalculateHash(text, HashMd5)
}

// IsLikelyHexHashString states whether value looks like a hexadecimal digest of at least 64 bits.
func IsLikelyHexHashString(value string) bool {
	return hexHashRegex.MatchString(value)
}

// ArgumentsKey returns a key identifying an argument list. Arguments are
// rendered with their type and Go syntax representation, so that values of
// different types or shapes yield different keys. Pointers, channels and
// functions are identified by address and never by what they point to.
// Slices and maps are identified by their content at the time of the call.
// The key concatenates the xxhash and murmur3 digests of that rendering.
func ArgumentsKey(args ...any) string {
	var rendering strings.Builder
	for i := range args {
		_, _ = fmt.Fprintf(&rendering, "%d:%T:", i, args[i])
		if isReference(args[i]) {
			_, _ = fmt.Fprintf(&rendering, "%p;", args[i])
		} else {
			_, _ = fmt.Fprintf(&rendering, "%#v;", args[i])
		}
	}
	text := rendering.String()
	return CalculateHash(text, HashXXHash) + CalculateHash(text, HashMurmur)
}

func isReference(arg any) bool {
	if arg == nil {
		return false
	}
	switch reflect.TypeOf(arg).Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
