package entities

// Channel names a perception channel that ambient effects can degrade
type Channel string

const (
	ChannelVisual Channel = "Visual"
	ChannelAudio  Channel = "Audio"
)

// Multipliers holds per-channel event multipliers in [0,1].
// A channel with no entry is unaffected.
type Multipliers map[Channel]float64

// Get returns the multiplier for a channel, 1.0 when unset
func (m Multipliers) Get(ch Channel) float64 {
	if v, ok := m[ch]; ok {
		return v
	}
	return 1.0
}
