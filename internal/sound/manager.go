// Package sound manages playback of short synthesized cues with support for
// interrupting and avoiding overlapping playback of the same cue.
package sound

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// Cue names
const (
	DOOR_OPEN  = "door_open"
	DOOR_CLOSE = "door_close"
	NOISE      = "noise"
	BUMP       = "bump"
	REGENERATE = "regenerate"
	SEWER      = "sewer"
)

const CommonSampleRate = 44100 // Common sample rate for all cues

var (
	ErrNilManager = errors.New("sound: manager is nil")
	ErrNoSample   = errors.New("sound: sample not loaded")
)

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cues lists the notes every cue is synthesized from.
var cues = map[string][]note{
	DOOR_OPEN:  {{330, 60 * time.Millisecond}, {440, 60 * time.Millisecond}, {660, 90 * time.Millisecond}},
	DOOR_CLOSE: {{660, 60 * time.Millisecond}, {440, 60 * time.Millisecond}, {220, 120 * time.Millisecond}},
	NOISE:      {{880, 40 * time.Millisecond}, {0, 20 * time.Millisecond}, {880, 40 * time.Millisecond}, {0, 20 * time.Millisecond}, {880, 40 * time.Millisecond}},
	BUMP:       {{110, 80 * time.Millisecond}},
	REGENERATE: {{262, 80 * time.Millisecond}, {330, 80 * time.Millisecond}, {392, 80 * time.Millisecond}, {523, 160 * time.Millisecond}},
	SEWER:      {{98, 150 * time.Millisecond}, {0, 50 * time.Millisecond}, {73, 250 * time.Millisecond}},
}

// Manager controls the synthesis and playback of cues.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-sample volume in dB
	backend    any
	pulseCtrl  *pulseControl
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	return mgr, nil
}

// newManager builds the mixing chain without touching any audio device.
func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// LoadSamples synthesizes every cue into memory.
func (mgr *Manager) LoadSamples() error {
	for name, notes := range cues {
		if err := mgr.synthesize(name, notes...); err != nil {
			return err
		}
	}
	return nil
}

// synthesize renders notes into a sample stored under name.
func (mgr *Manager) synthesize(name string, notes ...note) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	sr := mgr.format.SampleRate
	var streamers []beep.Streamer
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			streamers = append(streamers, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return err
		}
		streamers = append(streamers, beep.Take(samples, tone))
	}

	buf := beep.NewBuffer(mgr.format)
	buf.Append(beep.Seq(streamers...))
	mgr.samples[name] = buf
	return nil
}

func (mgr *Manager) SetMasterVolume(db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	if mgr.vol != nil {
		mgr.vol.Volume = db
	}
}

func (mgr *Manager) SetVolume(name string, db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// Play stops current playback of the cue (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return ErrNilManager
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSample, name)
	}

	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}
	if mgr.muted {
		return nil
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   mgr.sampleVols[name], // default 0 if not set
		Silent:   false,
	}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// PlayWithVolume plays the cue with specified volume in dB.
func (mgr *Manager) PlayWithVolume(name string, db float64) error {
	if mgr == nil {
		return ErrNilManager
	}
	mgr.SetVolume(name, db)
	return mgr.Play(name)
}

// Duration returns the length of a loaded cue.
func (mgr *Manager) Duration(name string) (time.Duration, bool) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	buf, ok := mgr.samples[name]
	if !ok {
		return 0, false
	}
	return mgr.format.SampleRate.D(buf.Len()), true
}

// StopListed stops playback of the specified cues by name.
// If a cue is not currently playing, it is ignored.
func (mgr *Manager) StopListed(names ...string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Paused = true
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing cues.
func (mgr *Manager) StopAll() {
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

// IsMuted reports whether output is muted.
func (mgr *Manager) IsMuted() bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the backend and frees resources.
func (mgr *Manager) Close() {
	mgr.StopAll()
	mgr.closeBackend()
}
