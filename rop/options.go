package rop

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/opforge/fbxexport/fbxsdk"
)

type AxisSystemType string

const (
	AxisCurrent        AxisSystemType = "current"
	AxisYUpRightHanded AxisSystemType = "y_up_right"
	AxisYUpLeftHanded  AxisSystemType = "y_up_left"
	AxisZUpRightHanded AxisSystemType = "z_up_right"
)

type UnitName string

const (
	UnitNameMM   UnitName = "mm"
	UnitNameCM   UnitName = "cm"
	UnitNameDM   UnitName = "dm"
	UnitNameM    UnitName = "m"
	UnitNameKM   UnitName = "km"
	UnitNameInch UnitName = "in"
	UnitNameFoot UnitName = "ft"
	UnitNameYard UnitName = "yd"
	UnitNameMile UnitName = "mi"
)

var systemUnits = map[UnitName]fbxsdk.SystemUnit{
	UnitNameMM:   fbxsdk.UnitMM,
	UnitNameCM:   fbxsdk.UnitCM,
	UnitNameDM:   fbxsdk.UnitDM,
	UnitNameM:    fbxsdk.UnitM,
	UnitNameKM:   fbxsdk.UnitKM,
	UnitNameInch: fbxsdk.UnitInch,
	UnitNameFoot: fbxsdk.UnitFoot,
	UnitNameYard: fbxsdk.UnitYard,
	UnitNameMile: fbxsdk.UnitMile,
}

// ExportClip names a frame range to bake as a separate animation stack.
type ExportClip struct {
	Name       string  `yaml:"name"`
	StartFrame float64 `yaml:"startframe"`
	EndFrame   float64 `yaml:"endframe"`
}

// Options are the per-session export parameters.
type Options struct {
	// StartNodePath is the network to export from, "/obj" when empty.
	StartNodePath string `yaml:"startnode"`

	// BundlePattern selects bundles by name when ExportingBundles is
	// set; the export scope becomes the network containing all of them.
	BundlePattern    string `yaml:"bundles"`
	ExportingBundles bool   `yaml:"exportbundles"`

	// TakeName switches the active take for the duration of the
	// session; empty keeps the current take.
	TakeName string `yaml:"take"`

	// Version is the writer selector, "NAME | VERSION".
	Version       string `yaml:"sdkversion"`
	ExportInAscii bool   `yaml:"exportascii"`

	AxisSystem        AxisSystemType `yaml:"axissystem"`
	ConvertAxisSystem bool           `yaml:"convertaxis"`

	ConvertUnits  bool     `yaml:"convertunits"`
	ConvertUnitTo UnitName `yaml:"convertunitto"`

	EmbedMedia bool `yaml:"embedmedia"`

	ExportClips []ExportClip `yaml:"clips"`

	ExportDeformsAsVC      bool `yaml:"deformsasvc"`
	ExportInvisibleObjects bool `yaml:"exportinvisible"`
}

func (o *Options) Reset() {
	*o = Options{
		StartNodePath: "/obj",
		Version:       "FBX | FBX201400",
		AxisSystem:    AxisCurrent,
		ConvertUnitTo: UnitNameCM,
	}
}

// LoadOptions reads yaml options on top of the defaults.
func LoadOptions(r io.Reader) (*Options, error) {
	o := &Options{}
	o.Reset()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(o); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode options")
	}
	return o, nil
}

func LoadOptionsFile(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open options %q", path)
	}
	defer f.Close()
	return LoadOptions(f)
}
