package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/paletta/internal/colour"
)

// hexValue is a pflag.Value holding a validated colour.
type hexValue struct {
	rgb colour.RGB
	set bool
}

var _ pflag.Value = (*hexValue)(nil)

func (v *hexValue) String() string {
	if !v.set {
		return ""
	}
	return v.rgb.Hex()
}

func (v *hexValue) Set(s string) error {
	rgb, err := colour.ParseHex(s)
	if err != nil {
		return err
	}
	v.rgb = rgb
	v.set = true
	return nil
}

func (v *hexValue) Type() string {
	return "hex"
}

// colourFlag registers a --colour/-c flag on fs.
func colourFlag(fs *pflag.FlagSet, usage string) *hexValue {
	v := &hexValue{}
	fs.VarP(v, "colour", "c", usage)
	return v
}
