package domain

import "sort"

// KeyType enumerates the key algorithms the engine can mint. The same set
// applies to master keys and subkeys.
type KeyType string

const (
	KeyTypeRSA2048 KeyType = "rsa-2048"
	KeyTypeRSA4096 KeyType = "rsa-4096"
	KeyTypeECCP256 KeyType = "ecc-p256"
	KeyTypeEd25519 KeyType = "ed25519"

	// DefaultKeyType applies when a create request omits key_type.
	DefaultKeyType = KeyTypeRSA4096
)

// HashAlgorithm names the digest used when signing or verifying.
type HashAlgorithm string

const (
	HashSHA224 HashAlgorithm = "sha2-224"
	HashSHA256 HashAlgorithm = "sha2-256"
	HashSHA384 HashAlgorithm = "sha2-384"
	HashSHA512 HashAlgorithm = "sha2-512"

	DefaultHashAlgorithm = HashSHA256
)

// MarshalingAlgorithm names the wire encoding of a detached signature.
type MarshalingAlgorithm string

const (
	MarshalingASCIIArmor MarshalingAlgorithm = "ascii-armor"
	MarshalingBase64     MarshalingAlgorithm = "base64"

	DefaultMarshalingAlgorithm = MarshalingASCIIArmor
)

// SignatureAlgorithm names the RSA padding scheme for signatures. OpenPGP
// pins RSA signatures to PKCS#1 v1.5, so that is the only member; non-RSA
// keys accept the parameter and ignore it.
type SignatureAlgorithm string

const (
	SignaturePKCS1v15 SignatureAlgorithm = "pkcs1v15"

	DefaultSignatureAlgorithm = SignaturePKCS1v15
)

var (
	keyTypes = map[KeyType]struct{}{
		KeyTypeRSA2048: {},
		KeyTypeRSA4096: {},
		KeyTypeECCP256: {},
		KeyTypeEd25519: {},
	}
	hashAlgorithms = map[HashAlgorithm]struct{}{
		HashSHA224: {},
		HashSHA256: {},
		HashSHA384: {},
		HashSHA512: {},
	}
	marshalingAlgorithms = map[MarshalingAlgorithm]struct{}{
		MarshalingASCIIArmor: {},
		MarshalingBase64:     {},
	}
	signatureAlgorithms = map[SignatureAlgorithm]struct{}{
		SignaturePKCS1v15: {},
	}
)

func ValidKeyType(v string) bool {
	_, ok := keyTypes[KeyType(v)]
	return ok
}

func ValidHashAlgorithm(v string) bool {
	_, ok := hashAlgorithms[HashAlgorithm(v)]
	return ok
}

func ValidMarshalingAlgorithm(v string) bool {
	_, ok := marshalingAlgorithms[MarshalingAlgorithm(v)]
	return ok
}

func ValidSignatureAlgorithm(v string) bool {
	_, ok := signatureAlgorithms[SignatureAlgorithm(v)]
	return ok
}

// Op names an engine operation for parameter screening.
type Op string

const (
	OpCreateKey    Op = "create key"
	OpReadKey      Op = "read key"
	OpListKeys     Op = "list keys"
	OpDeleteKey    Op = "delete key"
	OpExportKey    Op = "export key"
	OpCreateSubkey Op = "create subkey"
	OpReadSubkey   Op = "read subkey"
	OpListSubkeys  Op = "list subkeys"
	OpDeleteSubkey Op = "delete subkey"
	OpSign         Op = "sign"
	OpVerify       Op = "verify"
)

// allowedParams whitelists the request parameters each operation accepts.
// Anything outside the set is rejected before validation or side effects,
// so callers can never silently pass options the engine does not honor.
var allowedParams = map[Op]map[string]struct{}{
	OpCreateKey:    set("key_type", "exportable", "real_name", "email", "expires"),
	OpReadKey:      set(),
	OpListKeys:     set(),
	OpDeleteKey:    set(),
	OpExportKey:    set("key_type"),
	OpCreateSubkey: set("key_type", "expires"),
	OpReadSubkey:   set(),
	OpListSubkeys:  set(),
	OpDeleteSubkey: set(),
	OpSign:         set("input", "hash_algorithm", "marshaling_algorithm", "signature_algorithm", "expires"),
	OpVerify:       set("input", "signature", "hash_algorithm", "marshaling_algorithm", "signature_algorithm"),
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// UnsupportedParams returns the parameters of p the operation does not
// accept, sorted for stable error messages.
func UnsupportedParams(op Op, p Params) []string {
	allowed := allowedParams[op]
	var out []string
	for name := range p {
		if _, ok := allowed[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
