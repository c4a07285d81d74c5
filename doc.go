// Package gogost implements the symmetric cryptographic core of the
// Russian national standards GOST R 34.12-2015 (block ciphers Magma and
// Kuznechik), GOST R 34.13-2015 (modes of operation), and the associated
// AEAD constructions, key-derivation pipelines, and finite-field
// arithmetic that the standards' modes depend on.
//
// # Packages
//
//   - ciphers: the Magma and Kuznechik block-cipher engines, masked key
//     schedules, and the openssl-compatibility byte-order switch.
//   - modes: ECB, CTR, CBC, OFB, CFB and XTS modes of operation composed
//     over any ciphers.Engine.
//   - gf: GF(2^64/128/256/512) multiplication used by CMAC and MGM.
//   - mac: the generic streaming Mac aggregator, CMAC (OMAC1), and
//     HMAC/NMAC over Streebog.
//   - aead: MGM and the CTR-CMAC / CTR-HMAC composite AEADs.
//   - kdf: KDF_GOSTR3411_2012_256, TLSTREE, and the generalized kdf_state
//     sequence generator.
//   - oid: the dotted-OID to algorithm/mode identifier catalog.
//
// # Masked keys
//
// Every secret-key object is kept XOR-masked in memory between
// operations and carries a short integrity code recomputed on every
// state change; see internal/mask for the shared lifecycle every key
// type in this module builds on.
//
// # Security considerations
//
// Protected against: tampering of masked key state detected via
// integrity codes, resource (block/invocation) exhaustion, and
// AEAD tag forgery. Not protected against: side-channel leakage from
// the underlying Go runtime, compromised hosts, or misuse of the
// openssl-compatibility switch across concurrently operating keys.
package gogost
