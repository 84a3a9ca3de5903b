package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/geoip"
	"github.com/vinser/zombicity/internal/sound"
)

// State holds persistent settings and the seeds of past cities.
// Cities themselves are never stored, a seed regenerates them.
type State struct {
	Width        int                `json:"width"`         // City width in cells
	Height       int                `json:"height"`        // City height in cells
	GlyphSize    string             `json:"glyph_size"`    // Glyph size: small, medium, large
	Mute         bool               `json:"mute"`          // Mute all sounds
	LastSeed     int64              `json:"last_seed"`     // Seed of the last generated city
	Seeds        []int64            `json:"seeds"`         // Seed history, oldest first
	LocationInfo geoip.LocationInfo `json:"location_info"` // Location information
	SoundManager *sound.Manager     `json:"-"`
}

const (
	// Glyph sizes
	GlyphSmall   = "small"
	GlyphMedium  = "medium"
	GlyphLarge   = "large"
	GlyphDefault = GlyphMedium

	DefaultWidth  = 20
	DefaultHeight = 12
	MaxWidth      = 80
	MaxHeight     = 40

	// MaxHistory bounds the seed history
	MaxHistory = 16
)

var (
	ErrCorrupted = errors.New("state: corrupted save file")
	ErrTooShort  = errors.New("state: ciphertext too short")
)

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("zombicity")
	if err != nil {
		appID = "default-zombicity-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// saveDir is replaced in tests.
var saveDir = func() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "zombicity"), nil
}

// ValidGlyphSize reports whether size names a known glyph size.
func ValidGlyphSize(size string) bool {
	return size == GlyphSmall || size == GlyphMedium || size == GlyphLarge
}

// SetMute toggles the mute state and applies it to the sound manager.
func (s *State) SetMute(mute bool) {
	s.Mute = mute
	if s.SoundManager == nil {
		return
	}
	if s.Mute {
		s.SoundManager.Mute()
	} else {
		s.SoundManager.Unmute()
	}
}

// SetSize stores a city size clamped to the supported range.
func (s *State) SetSize(width, height int) {
	s.Width = clamp(width, city.MinSize, MaxWidth)
	s.Height = clamp(height, city.MinSize, MaxHeight)
}

// RecordSeed remembers seed as the last one and appends it to the bounded history.
// Reopening the last city does not grow the history.
func (s *State) RecordSeed(seed int64) {
	s.LastSeed = seed
	if n := len(s.Seeds); n > 0 && s.Seeds[n-1] == seed {
		return
	}
	s.Seeds = append(s.Seeds, seed)
	if len(s.Seeds) > MaxHistory {
		s.Seeds = append([]int64(nil), s.Seeds[len(s.Seeds)-MaxHistory:]...)
	}
}

// PreviousSeed returns the seed generated before the last one.
func (s *State) PreviousSeed() (int64, bool) {
	if len(s.Seeds) < 2 {
		return 0, false
	}
	return s.Seeds[len(s.Seeds)-2], true
}

// Reset restores default settings and forgets the seed history.
// The sound manager of the session is kept.
func (s *State) Reset() {
	s.Width, s.Height = DefaultWidth, DefaultHeight
	s.GlyphSize = GlyphDefault
	s.Seeds = nil
	s.SetMute(false)
}

// RecordAndSave records the seed of a freshly generated city and persists the state.
func (s *State) RecordAndSave(seed int64) error {
	s.RecordSeed(seed)
	return s.Save()
}

// normalize repairs values that an older or edited save may carry.
func (s *State) normalize() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	s.SetSize(s.Width, s.Height)
	if !ValidGlyphSize(s.GlyphSize) {
		s.GlyphSize = GlyphDefault
	}
	if len(s.Seeds) > MaxHistory {
		s.Seeds = s.Seeds[len(s.Seeds)-MaxHistory:]
	}
}

// Save persists the current state to an encrypted file with an integrity check.
func (s *State) Save() error {
	path, err := getSavePath()
	if err != nil {
		return err
	}
	encrypted, err := seal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encrypted, 0644)
}

var fallbackLocation = &geoip.LocationInfo{
	Continent: "Europe",
	Country:   "The Netherlands",
	City:      "Amsterdam",
	Lat:       52.3728,
	Lon:       4.88805,
	Timezone:  "Europe/Amsterdam",
	IP:        "193.0.11.51",
	TimeStamp: time.Now(),
}

// New returns default settings with a fresh seed.
func New() *State {
	loc, err := geoip.GetLocationInfo()
	if err != nil {
		loc = fallbackLocation
	}
	soundMgr, soundInitFailed := initializeSound()
	s := &State{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		GlyphSize:    GlyphDefault,
		LastSeed:     time.Now().UnixNano(),
		LocationInfo: *loc,
		SoundManager: soundMgr,
	}
	s.SetMute(soundInitFailed)
	return s
}

// Load reads the state from disk, decrypts and verifies it.
// Any failure yields fresh default settings.
func Load() *State {
	path, err := getSavePath()
	if err != nil {
		return New()
	}
	s, err := load(path)
	if err != nil {
		return New()
	}

	// If sound fails to start the session is muted,
	// but the saved preference is kept for the next one.
	soundMgr, soundInitFailed := initializeSound()
	s.SoundManager = soundMgr
	if soundInitFailed {
		s.Mute = true
	}
	s.SetMute(s.Mute)
	return s
}

func load(path string) (*State, error) {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return open(encrypted)
}

// seal serializes s, prepends a CRC32 checksum and encrypts the result.
func seal(s *State) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)
	return encrypt(data)
}

// open reverses seal.
func open(encrypted []byte) (*State, error) {
	decrypted, err := decrypt(encrypted)
	if err != nil {
		return nil, err
	}
	if len(decrypted) < 5 {
		return nil, ErrCorrupted
	}
	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return nil, ErrCorrupted
	}
	s := &State{}
	if err := json.Unmarshal(payload, s); err != nil {
		return nil, err
	}
	s.normalize()
	return s, nil
}

// initializeSound creates a sound manager and synthesizes its cues.
// It returns the manager and a boolean indicating if initialization failed (and thus should be muted).
func initializeSound() (*sound.Manager, bool) {
	soundMgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		return nil, true
	}
	if err := soundMgr.LoadSamples(); err != nil {
		return nil, true
	}
	return soundMgr, false
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, ErrTooShort
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	dir, err := saveDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.dat"), nil
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
