package orc

import (
	"crypto/rand"
	"sort"

	"github.com/Sullivan-Patrick/orc/orcproto"
	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptionLibrary performs the AEAD operations DWRF per-column
// encryption needs: generating a fresh data encryption key for a group of
// columns, encrypting that key under the column's master key metadata, and
// sealing an encryption group's assembled bytes under the data key.
type EncryptionLibrary interface {
	GenerateDataEncryptionKey() ([]byte, error)
	EncryptKey(masterKeyMetadata, dataKey []byte) ([]byte, error)
	Encrypt(dataKey, plaintext []byte) ([]byte, error)
}

// DwrfDataEncryptor implements EncryptionLibrary with chacha20poly1305,
// the closest fit in the retrieval pack's dependency set for "generate a
// symmetric key, wrap it, then AEAD-seal a byte buffer".
type DwrfDataEncryptor struct{}

func NewDwrfDataEncryptor() *DwrfDataEncryptor { return &DwrfDataEncryptor{} }

func (DwrfDataEncryptor) GenerateDataEncryptionKey() ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// EncryptKey wraps dataKey under masterKeyMetadata, itself used as a key
// (real deployments resolve masterKeyMetadata to a key through a key
// provider; this module treats it as already being key material, since a
// key management service is outside this module's scope).
func (DwrfDataEncryptor) EncryptKey(masterKeyMetadata, dataKey []byte) ([]byte, error) {
	return sealWithRandomNonce(masterKeyMetadata, dataKey)
}

func (DwrfDataEncryptor) Encrypt(dataKey, plaintext []byte) ([]byte, error) {
	return sealWithRandomNonce(dataKey, plaintext)
}

func sealWithRandomNonce(key, plaintext []byte) ([]byte, error) {
	padded := make([]byte, chacha20poly1305.KeySize)
	copy(padded, key)
	aead, err := chacha20poly1305.New(padded)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// EncryptionInfo maps flattened node ids to encryption groups: each group
// shares one data encryption key, whose encrypted-key blob is recorded per
// stripe in StripeInformation.EncryptedLocalKeys. A group is registered
// as a set of disjoint subtrees (AddGroup's roots), and every descendant
// of a root inherits that root's group and root membership — a struct
// node registered as a root encrypts its nested leaf columns too, not
// just its own PRESENT stream.
type EncryptionInfo struct {
	library  EncryptionLibrary
	groupOf  map[int]int
	rootOf   map[int]int
	keyOf    map[int][]byte
	encKeyOf map[int][]byte
	keyMeta  map[int][]byte
}

// NewEncryptionInfo returns an EncryptionInfo with no configured groups;
// AddGroup must be called once per group of subtree roots that share a
// key.
func NewEncryptionInfo(library EncryptionLibrary) *EncryptionInfo {
	return &EncryptionInfo{
		library:  library,
		groupOf:  make(map[int]int),
		rootOf:   make(map[int]int),
		keyOf:    make(map[int][]byte),
		encKeyOf: make(map[int][]byte),
		keyMeta:  make(map[int][]byte),
	}
}

// AddGroup registers group as owning the subtrees rooted at roots,
// generating a fresh data encryption key and wrapping it under
// masterKeyMetadata. Each root and every node in its subtree (walked via
// TypeDescription.Children()) is registered: GroupFor resolves true for
// all of them, and RootFor resolves to that root's own node id for all
// of them, so a stream or statistics bucket belonging to any descendant
// column still routes to the right group and the right subtree-root
// bucket.
func (e *EncryptionInfo) AddGroup(group int, roots []*TypeDescription, masterKeyMetadata []byte) error {
	key, err := e.library.GenerateDataEncryptionKey()
	if err != nil {
		return err
	}
	encKey, err := e.library.EncryptKey(masterKeyMetadata, key)
	if err != nil {
		return err
	}
	e.keyOf[group] = key
	e.encKeyOf[group] = encKey
	e.keyMeta[group] = masterKeyMetadata
	for _, root := range roots {
		e.registerSubtree(group, root.ID(), root)
	}
	return nil
}

func (e *EncryptionInfo) registerSubtree(group, root int, node *TypeDescription) {
	id := node.ID()
	e.groupOf[id] = group
	e.rootOf[id] = root
	for _, child := range node.Children() {
		e.registerSubtree(group, root, child)
	}
}

// GroupFor returns the encryption group owning node, and whether node is
// encrypted at all — true for a registered subtree root and for every
// descendant of that root.
func (e *EncryptionInfo) GroupFor(node int) (int, bool) {
	g, ok := e.groupOf[node]
	return g, ok
}

// RootFor returns the subtree-root node id node was registered under via
// AddGroup (node itself if node is a root), and whether node is
// encrypted at all. This is the bucketing key encryptedstats.go seals
// one file-statistics blob per — independent of GroupFor, so resolving
// the root a descendant belongs to never requires a second equality
// check against GroupFor's result.
func (e *EncryptionInfo) RootFor(node int) (int, bool) {
	r, ok := e.rootOf[node]
	return r, ok
}

// Encrypt seals plaintext under group's data encryption key.
func (e *EncryptionInfo) Encrypt(group int, plaintext []byte) ([]byte, error) {
	key, ok := e.keyOf[group]
	if !ok {
		return plaintext, nil
	}
	return e.library.Encrypt(key, plaintext)
}

// EncryptedKey returns the wrapped data encryption key for group, recorded
// per-stripe in StripeInformation.EncryptedLocalKeys.
func (e *EncryptionInfo) EncryptedKey(group int) []byte {
	return e.encKeyOf[group]
}

// ToProto assembles the file footer's DwrfEncryption section. Per the
// format's reader contract, the wrapped data-encryption key never appears
// here: it travels per-stripe in StripeInformation.EncryptedLocalKeys
// instead, so a reader without a stripe in hand never sees a key. Each
// group's encrypted nodes instead carry encryptedFileStats, one already-
// sealed ColumnStatistics blob per subtree root registered via AddGroup,
// keyed here by that root node's id and ordered the same as Nodes.
func (e *EncryptionInfo) ToProto(encryptedFileStats map[int][]byte) *orcproto.DwrfEncryption {
	if len(e.keyOf) == 0 {
		return nil
	}
	nodesByGroup := make(map[int][]int)
	for node, group := range e.groupOf {
		nodesByGroup[group] = append(nodesByGroup[group], node)
	}
	groups := make([]int, 0, len(e.keyOf))
	for g := range e.keyOf {
		groups = append(groups, g)
	}
	sort.Ints(groups)
	out := &orcproto.DwrfEncryption{}
	provider := "unknown"
	out.KeyProvider = &provider
	for _, g := range groups {
		nodes := nodesByGroup[g]
		sort.Ints(nodes)
		u32 := make([]uint32, len(nodes))
		for i, n := range nodes {
			u32[i] = uint32(n)
		}
		group := &orcproto.EncryptionGroup{Nodes: u32}
		for _, n := range nodes {
			if blob, ok := encryptedFileStats[n]; ok {
				group.Statistics = append(group.Statistics, blob)
			}
		}
		out.Groups = append(out.Groups, group)
	}
	return out
}
