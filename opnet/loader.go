package opnet

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/opforge/fbxexport/utils"
)

// Scene-document schema. See examples/ for complete files.

type sceneDoc struct {
	Settings struct {
		FPS         float64 `yaml:"fps"`
		UnitLength  float64 `yaml:"unitlength"`
		Orientation string  `yaml:"orientation"`
	} `yaml:"settings"`
	Takes       []string            `yaml:"takes"`
	CurrentTake string              `yaml:"currenttake"`
	Bundles     map[string][]string `yaml:"bundles"`
	Nodes       []sceneNodeDoc      `yaml:"nodes"`
}

type sceneNodeDoc struct {
	Path     string          `yaml:"path"`
	Kind     string          `yaml:"kind"`
	Visible  *bool           `yaml:"visible"`
	Instance string          `yaml:"instance"`
	Geometry *sceneGeoDoc    `yaml:"geometry"`
	Light    *sceneLightDoc  `yaml:"light"`
	Channels []sceneChansDoc `yaml:"channels"`
}

type sceneGeoDoc struct {
	Points   [][3]float32 `yaml:"points"`
	Polygons [][]int32    `yaml:"polygons"`
	Normals  [][3]float32 `yaml:"normals"`
	UVs      [][2]float32 `yaml:"uvs"`
	UVIndex  []int32      `yaml:"uvindex"`
}

type sceneLightDoc struct {
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Ambient   bool       `yaml:"ambient"`
}

type sceneChansDoc struct {
	Take      string        `yaml:"take"`
	Translate sceneChanDoc  `yaml:"translate"`
	Rotate    sceneChanDoc  `yaml:"rotate"`
	Scale     *sceneChanDoc `yaml:"scale"`
}

type sceneChanDoc struct {
	Default [3]float32    `yaml:"default"`
	Keys    []sceneKeyDoc `yaml:"keys"`
}

type sceneKeyDoc struct {
	Time  float64    `yaml:"time"`
	Value [3]float32 `yaml:"value"`

	// Quat is an alternative to Value for rotation keys: an (x, y, z, w)
	// quaternion converted to euler degrees on load.
	Quat *[4]float32 `yaml:"quat"`
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "network":
		return KindNetwork, nil
	case "subnet":
		return KindSubnet, nil
	case "null", "":
		return KindNull, nil
	case "geometry":
		return KindGeometry, nil
	case "light":
		return KindLight, nil
	case "instance":
		return KindInstance, nil
	}
	return KindNull, errors.Errorf("unknown node kind %q", s)
}

func (doc *sceneChanDoc) channel() Channel {
	ch := Channel{Default: mgl32.Vec3{doc.Default[0], doc.Default[1], doc.Default[2]}}
	for _, k := range doc.Keys {
		v := mgl32.Vec3{k.Value[0], k.Value[1], k.Value[2]}
		if k.Quat != nil {
			q := mgl32.Quat{
				V: mgl32.Vec3{k.Quat[0], k.Quat[1], k.Quat[2]},
				W: k.Quat[3],
			}
			v = utils.RadiansToDegreesV3(utils.QuatToEuler(q.Normalize()))
		}
		ch.Keys = append(ch.Keys, Key{Time: k.Time, Value: v})
	}
	sort.SliceStable(ch.Keys, func(i, j int) bool { return ch.Keys[i].Time < ch.Keys[j].Time })
	return ch
}

// ensurePath walks the path from the root, creating missing
// intermediate nodes as plain networks.
func ensurePath(d *Director, fullPath string, kind Kind) (*Node, error) {
	if fullPath == "" || fullPath == "/" {
		return nil, errors.Errorf("node path %q is not addressable", fullPath)
	}
	parts := strings.Split(strings.Trim(fullPath, "/"), "/")
	cur := d.Root()
	for i, part := range parts {
		next := cur.Child(part)
		if next == nil {
			k := KindNetwork
			if i == len(parts)-1 {
				k = kind
			}
			next = cur.CreateChild(part, k)
		}
		cur = next
	}
	return cur, nil
}

// LoadScene decodes a scene document into a fresh Director.
func LoadScene(r io.Reader) (*Director, error) {
	var doc sceneDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "Failed to unmarshal scene yaml")
	}

	d := NewDirector()

	if doc.Settings.FPS > 0 {
		d.ChannelManager().SetSamplesPerSec(doc.Settings.FPS)
	}
	if doc.Settings.UnitLength > 0 {
		d.ChannelManager().SetUnitLength(doc.Settings.UnitLength)
	}
	switch doc.Settings.Orientation {
	case "", "yup":
		d.SetOrientationMode(OrientYUp)
	case "zup":
		d.SetOrientationMode(OrientZUp)
	default:
		return nil, errors.Errorf("unknown orientation %q", doc.Settings.Orientation)
	}

	for _, name := range doc.Takes {
		d.Takes().AddTake(name)
	}
	if doc.CurrentTake != "" {
		if err := d.Takes().SetCurrent(doc.CurrentTake); err != nil {
			return nil, err
		}
	}

	for _, nd := range doc.Nodes {
		kind, err := parseKind(nd.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "node %q", nd.Path)
		}
		node, err := ensurePath(d, nd.Path, kind)
		if err != nil {
			return nil, err
		}
		if nd.Visible != nil {
			node.Visible = *nd.Visible
		}
		node.InstancePath = nd.Instance

		if nd.Geometry != nil {
			geo := &Geometry{
				Polygons: nd.Geometry.Polygons,
				UVIndex:  nd.Geometry.UVIndex,
			}
			for _, p := range nd.Geometry.Points {
				geo.Points = append(geo.Points, mgl32.Vec3{p[0], p[1], p[2]})
			}
			for _, n := range nd.Geometry.Normals {
				geo.Normals = append(geo.Normals, mgl32.Vec3{n[0], n[1], n[2]})
			}
			for _, uv := range nd.Geometry.UVs {
				geo.UVs = append(geo.UVs, mgl32.Vec2{uv[0], uv[1]})
			}
			node.Geometry = geo
		}
		if nd.Light != nil {
			node.Light = &Light{
				Color:     mgl32.Vec3{nd.Light.Color[0], nd.Light.Color[1], nd.Light.Color[2]},
				Intensity: nd.Light.Intensity,
				Ambient:   nd.Light.Ambient,
			}
		}

		for _, cd := range nd.Channels {
			ch := NewChannels()
			ch.Translate = cd.Translate.channel()
			ch.Rotate = cd.Rotate.channel()
			if cd.Scale != nil {
				ch.Scale = cd.Scale.channel()
			}
			node.SetChannels(cd.Take, ch)
		}
	}

	for name, paths := range doc.Bundles {
		b := d.Bundles().NewBundle(name)
		for _, p := range paths {
			node := d.FindNode(p)
			if node == nil {
				return nil, errors.Errorf("bundle %q references missing node %q", name, p)
			}
			b.AddNode(node)
		}
	}

	return d, nil
}

func LoadSceneFile(path string) (*Director, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open scene file")
	}
	defer f.Close()
	return LoadScene(f)
}
