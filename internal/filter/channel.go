package filter

import "github.com/gogpu/gg-filter/pixel"

// Channel selects one color channel by name.
type Channel int

// Color channels accepted by the single-channel filters.
const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "unknown"
	}
}

func (c Channel) valid() bool {
	return c >= ChannelRed && c <= ChannelBlue
}

// offset returns the sample offset of c within a pixel.
func (c Channel) offset() int {
	switch c {
	case ChannelGreen:
		return pixel.G
	case ChannelBlue:
		return pixel.B
	default:
		return pixel.R
	}
}

// ParseChannel maps "red", "green" or "blue" to a Channel.
// Matching is exact; any other name reports false.
func ParseChannel(name string) (Channel, bool) {
	switch name {
	case "red":
		return ChannelRed, true
	case "green":
		return ChannelGreen, true
	case "blue":
		return ChannelBlue, true
	}
	return 0, false
}
