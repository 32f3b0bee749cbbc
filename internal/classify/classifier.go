package classify

import (
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/corona10/goimagehash"
)

// Perceptual hashes are 64 bits; distance is the Hamming distance between
// a frame's hash and a reference signature.
const hashBits = 64

// Signatures of different kinds closer than this margin are treated as
// ambiguous and classified as KindNone.
const ambiguityMargin = 2

// Signature is a reference perceptual hash for one screen kind.
type Signature struct {
	Kind ScreenKind
	Hash *goimagehash.ImageHash
}

// DefaultSignatures returns the built-in signature table. Reference hashes
// were sampled from 1080p captures of the fissure reward screen.
func DefaultSignatures() []Signature {
	return []Signature{
		{Kind: KindRelicReward, Hash: goimagehash.NewImageHash(0xd4c2b09a68e1c396, goimagehash.PHash)},
	}
}

// ParseSignature decodes a "p:<hex>" or bare hex signature string.
func ParseSignature(s string) (*goimagehash.ImageHash, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "p:")
	bits, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return nil, err
	}
	return goimagehash.NewImageHash(bits, goimagehash.PHash), nil
}

// Classifier matches frames against known screen signatures.
type Classifier struct {
	sigs          []Signature
	minConfidence float64
}

// New creates a classifier. Matches below minConfidence yield KindNone.
func New(minConfidence float64, sigs []Signature) *Classifier {
	return &Classifier{sigs: sigs, minConfidence: minConfidence}
}

// Register adds or replaces the signature for a screen kind.
func (c *Classifier) Register(kind ScreenKind, hash *goimagehash.ImageHash) {
	for i := range c.sigs {
		if c.sigs[i].Kind == kind {
			c.sigs[i].Hash = hash
			return
		}
	}
	c.sigs = append(c.sigs, Signature{Kind: kind, Hash: hash})
}

// Classify returns the screen kind the image represents and a confidence in
// [0,1]. Identical input bytes always produce identical results.
func (c *Classifier) Classify(img image.Image) (ScreenKind, float64) {
	if img == nil || len(c.sigs) == 0 {
		return KindNone, 0
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		slog.Debug("perception hash failed", "error", err)
		return KindNone, 0
	}

	bestKind := KindNone
	bestDist := hashBits + 1
	secondDist := hashBits + 1

	for _, sig := range c.sigs {
		dist, err := sig.Hash.Distance(hash)
		if err != nil {
			continue
		}
		switch {
		case dist < bestDist:
			if sig.Kind != bestKind {
				secondDist = bestDist
			}
			bestDist = dist
			bestKind = sig.Kind
		case dist < secondDist && sig.Kind != bestKind:
			secondDist = dist
		}
	}

	if bestKind == KindNone {
		return KindNone, 0
	}

	confidence := 1 - float64(bestDist)/hashBits
	if confidence < c.minConfidence {
		return KindNone, confidence
	}

	// Two different screens matching almost equally well means the
	// signal is unreliable; report nothing rather than guessing.
	if secondDist-bestDist < ambiguityMargin && secondDist <= hashBits {
		return KindNone, confidence
	}

	return bestKind, confidence
}
