package foodnet

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// File names used by the directory form of Save/Load.
const (
	archFile    = "model.json"
	weightsFile = "weights.bin"
)

// weightsMagic starts every weight blob; the final byte is the format
// version.
var weightsMagic = [4]byte{'F', 'N', 'W', 1}

type archLayer struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Config json.RawMessage `json:"config,omitempty"`
}

type archDoc struct {
	Input  []int       `json:"input"`
	Cost   string      `json:"cost,omitempty"`
	Layers []archLayer `json:"layers"`
}

func (net *Network) arch() (*archDoc, error) {
	doc := &archDoc{Input: net.InputDims()}
	if net.cf != nil {
		doc.Cost = net.cf.TypeString()
	}

	for i, l := range net.layers {
		cfg, err := json.Marshal(l)
		if err != nil {
			return nil, errors.Wrapf(err, "Couldn't encode configuration of layer %q", net.names[i])
		}

		doc.Layers = append(doc.Layers, archLayer{
			Name:   net.names[i],
			Type:   l.TypeString(),
			Config: cfg,
		})
	}

	return doc, nil
}

// SaveArch writes the Network's topology - input dimensions, layer stack, and
// cost function - as a JSON document. Weights are not included; they belong
// to SaveWeights. An existing file is overwritten unconditionally.
func (net *Network) SaveArch(path string) error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	doc, err := net.arch()
	if err != nil {
		return err
	}

	bs, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return errors.Wrapf(err, "Couldn't encode topology document")
	}

	if err := os.WriteFile(path, append(bs, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "Couldn't write topology to %q", path)
	}

	return nil
}

// SaveWeights writes the trained parameters of every weighted layer, in stack
// order, as a little-endian binary blob. An existing file is overwritten
// unconditionally.
func (net *Network) SaveWeights(path string) error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	var buf bytes.Buffer
	buf.Write(weightsMagic[:])

	var adj []Adjustable
	for _, l := range net.layers {
		if a, ok := l.(Adjustable); ok {
			adj = append(adj, a)
		}
	}

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(adj))); err != nil {
		return errors.Wrapf(err, "Couldn't encode weight blob header")
	}

	for _, a := range adj {
		ws := a.Weights()
		if err := binary.Write(&buf, binary.LittleEndian, uint32(len(ws))); err != nil {
			return errors.Wrapf(err, "Couldn't encode weight blob")
		}
		if err := binary.Write(&buf, binary.LittleEndian, ws); err != nil {
			return errors.Wrapf(err, "Couldn't encode weight blob")
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "Couldn't write weights to %q", path)
	}

	return nil
}

// LoadWeights reads a blob previously written by SaveWeights into the
// Network's layers. The Network must have been finalized (or come from
// LoadArch), and the blob's layer count and per-layer lengths must match the
// current topology exactly.
func (net *Network) LoadWeights(path string) error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "Couldn't read weights from %q", path)
	}

	r := bytes.NewReader(bs)

	var magic [4]byte
	if _, err := r.Read(magic[:]); err != nil || magic != weightsMagic {
		return errors.Errorf("%q is not a foodnet weight blob", path)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return errors.Wrapf(err, "Weight blob %q has a truncated header", path)
	}

	var adj []Adjustable
	for _, l := range net.layers {
		if a, ok := l.(Adjustable); ok {
			adj = append(adj, a)
		}
	}

	if int(count) != len(adj) {
		return errors.Errorf("Weight blob %q holds %d weighted layers; Network has %d", path, count, len(adj))
	}

	for i, a := range adj {
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return errors.Wrapf(err, "Weight blob %q is truncated at layer %d", path, i)
		}

		ws := a.Weights()
		if int(n) != len(ws) {
			return errors.Errorf("Weight blob %q holds %d weights for layer %d; expected %d", path, n, i, len(ws))
		}

		if err := binary.Read(r, binary.LittleEndian, ws); err != nil {
			return errors.Wrapf(err, "Weight blob %q is truncated at layer %d", path, i)
		}
	}

	return nil
}

// Save writes the Network to the specified path, creating a directory (with
// permissions 0700) holding the topology document and the weight blob.
//
// If 'overwrite' is false and the directory already exists, Save will return
// error.
func (net *Network) Save(dirPath string, overwrite bool) error {
	if net.stat < finalized {
		return ErrNotFinalized
	}

	if _, err := os.Stat(dirPath); err == nil {
		if !overwrite {
			return errors.Errorf("Can't save network, %q already exists and overwrite is not enabled", dirPath)
		}

		if err := os.RemoveAll(dirPath); err != nil {
			return errors.Wrapf(err, "Can't save network, couldn't remove pre-existing %q to overwrite", dirPath)
		}
	}

	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory to save network")
	}

	if err := net.SaveArch(filepath.Join(dirPath, archFile)); err != nil {
		return err
	}

	return net.SaveWeights(filepath.Join(dirPath, weightsFile))
}

// LoadArch rebuilds a Network from a topology document written by SaveArch.
// The resulting Network has freshly allocated - not initialized - weights;
// follow with LoadWeights before using it. Every layer type named by the
// document must have been registered, which happens in the init functions of
// the subpackages defining them.
func LoadArch(path string) (*Network, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't read topology from %q", path)
	}

	var doc archDoc
	if err := json.Unmarshal(bs, &doc); err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode topology document %q", path)
	}

	net := New(doc.Input...)
	for _, al := range doc.Layers {
		f, err := layerType(al.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load network, layer %q is unavailable", al.Name)
		}

		l := f()
		if len(al.Config) != 0 {
			if err := json.Unmarshal(al.Config, l); err != nil {
				return nil, errors.Wrapf(err, "Can't load network, configuration of layer %q is incompatible", al.Name)
			}
		}

		net.Add(al.Name, l)
	}

	if net.Error() != nil {
		return nil, errors.Wrapf(net.Error(), "Can't load network from %q", path)
	}

	if err := net.build(false); err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", path)
	}

	if doc.Cost != "" {
		f, err := costFuncType(doc.Cost)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load network from %q", path)
		}

		net.cf = f()
	}

	return net, nil
}

// Load rebuilds a Network from a directory previously written by Save: the
// topology from its document, then the weights from the blob. The result
// predicts identically to the Network at save time.
func Load(dirPath string) (*Network, error) {
	if _, err := os.Stat(dirPath); err != nil {
		return nil, errors.Errorf("Can't load network, containing directory %q does not exist", dirPath)
	}

	net, err := LoadArch(filepath.Join(dirPath, archFile))
	if err != nil {
		return nil, err
	}

	if err := net.LoadWeights(filepath.Join(dirPath, weightsFile)); err != nil {
		return nil, err
	}

	return net, nil
}
