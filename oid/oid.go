// Package oid catalogs the dotted OIDs this module's algorithms and
// modes are known by, and provides the aead_create_by_oid-style factory
// spec section 6 describes.
package oid

// Entry is one catalog row: a dotted OID and its human names.
type Entry struct {
	OID   string
	Names []string
}

// Stable OID-to-algorithm mapping (spec section 6).
var (
	Magma     = Entry{"1.2.643.7.1.1.5.1", []string{"magma", "gost89"}}
	Kuznechik = Entry{"1.2.643.7.1.1.5.2", []string{"kuznechik", "grasshopper"}}

	MagmaMGM     = Entry{"1.2.643.7.1.1.5.1.3", []string{"magma-mgm"}}
	KuznechikMGM = Entry{"1.2.643.7.1.1.5.2.3", []string{"kuznechik-mgm"}}

	// ACPKM is scoped out of this module but kept in the catalog for
	// OID-compatibility lookups (spec section 6).
	MagmaACPKM     = Entry{"1.2.643.7.1.1.5.1.1", []string{"magma-acpkm"}}
	KuznechikACPKM = Entry{"1.2.643.7.1.1.5.2.1", []string{"kuznechik-acpkm"}}
)

// Mode OIDs live under 1.2.643.2.52.1.5.*.
var (
	ModeECB = Entry{"1.2.643.2.52.1.5.1", []string{"ecb"}}
	ModeCTR = Entry{"1.2.643.2.52.1.5.2", []string{"ctr"}}
	ModeOFB = Entry{"1.2.643.2.52.1.5.3", []string{"ofb"}}
	ModeCBC = Entry{"1.2.643.2.52.1.5.4", []string{"cbc"}}
	ModeCFB = Entry{"1.2.643.2.52.1.5.5", []string{"cfb"}}
)

var catalog []Entry

func init() {
	catalog = []Entry{
		Magma, Kuznechik, MagmaMGM, KuznechikMGM, MagmaACPKM, KuznechikACPKM,
		ModeECB, ModeCTR, ModeOFB, ModeCBC, ModeCFB,
	}
}

// ByOID looks an entry up by its dotted OID string.
func ByOID(dotted string) (Entry, bool) {
	for _, e := range catalog {
		if e.OID == dotted {
			return e, true
		}
	}
	return Entry{}, false
}

// ByName looks an entry up by any of its human names.
func ByName(name string) (Entry, bool) {
	for _, e := range catalog {
		for _, n := range e.Names {
			if n == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}
