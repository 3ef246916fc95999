package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/log"
)

// seedSource hands out independent generators derived from one root seed.
type seedSource struct {
	mu   sync.Mutex
	root *rand.Rand
}

func newSeedSource(seed int64) *seedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seedSource{root: rand.New(rand.NewSource(seed))}
}

func (s *seedSource) next() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.root.Int63()))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncateRunes cuts s to max runes, replacing the tail with "..." when it is too long.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func containsFold(text, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}

// brandToken turns a brand name into a hashtag-safe token ("Coca Cola" -> "cocacola").
func brandToken(brand string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(brand) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "brand"
	}
	return b.String()
}

func newPostID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(log.RequestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func cacheKey(influencer, brand string, platform model.Platform, limit int) string {
	raw := strings.Join([]string{
		strings.ToLower(influencer),
		strings.ToLower(brand),
		string(platform),
		strconv.Itoa(limit),
	}, "|")
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
