package kdf

// Preset names one of the seven TLSTREE window-mask triples below: a
// default plus six named use-case presets (spec section 4.8).
type Preset struct {
	Name string
	C    [3]uint64
}

var (
	PresetDefault        = Preset{"default", [3]uint64{0xfff8000000000000, 0xfffffffff0000000, 0xffffffffffffe000}}
	PresetKuznechikMGMS   = Preset{"kuznyechik-mgm-s", [3]uint64{0xffffff0000000000, 0xfffffffffff00000, 0xffffffffffffffc0}}
	PresetKuznechikMGML   = Preset{"kuznyechik-mgm-l", [3]uint64{0xffff000000000000, 0xffffffffff000000, 0xfffffffffffff000}}
	PresetMagmaMGMS       = Preset{"magma-mgm-s", [3]uint64{0xffffffff00000000, 0xffffffffffffc000, 0xffffffffffffffff}}
	PresetMagmaMGML       = Preset{"magma-mgm-l", [3]uint64{0xffffff0000000000, 0xfffffffffffc0000, 0xffffffffffffffff}}
	PresetLibakrypt256    = Preset{"libakrypt-256", [3]uint64{0xffffffffff000000, 0xffffffffffffff00, 0xffffffffffffffff}}
	PresetLibakrypt4096   = Preset{"libakrypt-4096", [3]uint64{0xfffffffff0000000, 0xfffffffffffff000, 0xffffffffffffffff}}
)

var presetsByName = map[string]Preset{
	PresetDefault.Name:       PresetDefault,
	PresetKuznechikMGMS.Name: PresetKuznechikMGMS,
	PresetKuznechikMGML.Name: PresetKuznechikMGML,
	PresetMagmaMGMS.Name:     PresetMagmaMGMS,
	PresetMagmaMGML.Name:     PresetMagmaMGML,
	PresetLibakrypt256.Name:  PresetLibakrypt256,
	PresetLibakrypt4096.Name: PresetLibakrypt4096,
}

// PresetByName looks a named preset up from the catalog above.
func PresetByName(name string) (Preset, bool) {
	p, ok := presetsByName[name]
	return p, ok
}

const (
	label1 = "level1"
	label2 = "level2"
	label3 = "level3"
)

// TLSTreeState caches the three intermediate KDF256 outputs and the
// masked index that produced each one, recomputing only the levels
// whose masked index has changed when Derive advances to a new index
// (spec section 4.8: "a pure optimization; calling derive_tlstree fresh
// for each index must produce identical results").
type TLSTreeState struct {
	root   []byte
	preset Preset

	haveLevel [3]bool
	maskedIdx [3]uint64
	keys      [3][]byte
}

// NewTLSTreeState binds root (the top-level key) and preset; no
// derivation has happened yet.
func NewTLSTreeState(root []byte, preset Preset) *TLSTreeState {
	return &TLSTreeState{root: root, preset: preset}
}

// Derive returns the TLSTREE key for index, recomputing only the levels
// whose masked index differs from the cached one.
func (s *TLSTreeState) Derive(index uint64) ([]byte, error) {
	prev := s.root
	labels := [3]string{label1, label2, label3}
	for level := 0; level < 3; level++ {
		masked := index & s.preset.C[level]
		if s.haveLevel[level] && s.maskedIdx[level] == masked {
			prev = s.keys[level]
			continue
		}
		k, err := KDF256(prev, []byte(labels[level]), indexBytes(index, s.preset.C[level]))
		if err != nil {
			return nil, err
		}
		s.keys[level] = k
		s.maskedIdx[level] = masked
		s.haveLevel[level] = true
		// Every level below a changed level must be recomputed too,
		// since its input key depends on this level's freshly derived
		// output.
		for inner := level + 1; inner < 3; inner++ {
			s.haveLevel[inner] = false
		}
		prev = k
	}
	return prev, nil
}

// DeriveFresh computes the TLSTREE value for index from root with no
// caching, used by the equivalence self-test (spec section 8 property
// 7) to confirm DeriveFresh(i) == a cached state driven to index i.
func DeriveFresh(root []byte, preset Preset, index uint64) ([]byte, error) {
	prev := root
	labels := [3]string{label1, label2, label3}
	for level := 0; level < 3; level++ {
		k, err := KDF256(prev, []byte(labels[level]), indexBytes(index, preset.C[level]))
		if err != nil {
			return nil, err
		}
		prev = k
	}
	return prev, nil
}
