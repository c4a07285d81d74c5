package oid

import "github.com/absfs/gogost/ciphers"

type sentinelErr string

func (e sentinelErr) Error() string { return string(e) }

const errOIDMode sentinelErr = "wrong_oid: no cipher engine for this oid/name"

// EngineByName resolves a catalog name to a block-cipher Engine, the
// first half of the aead_create_by_oid factory (spec section 6): the
// caller still supplies the mode/MGM wrapper around the returned engine.
func EngineByName(name string) (ciphers.Engine, error) {
	entry, ok := ByName(name)
	if !ok {
		return nil, errOIDMode
	}
	switch entry.OID {
	case Magma.OID, MagmaMGM.OID, MagmaACPKM.OID:
		return ciphers.MagmaEngine{}, nil
	case Kuznechik.OID, KuznechikMGM.OID, KuznechikACPKM.OID:
		return ciphers.KuznechikEngine{}, nil
	default:
		return nil, errOIDMode
	}
}
