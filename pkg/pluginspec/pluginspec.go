// Package pluginspec reads a plugin's manifest (plugin.xml) to locate
// its Podfile fragment and any inline pod declarations. Plugins that
// ship only a bare Podfile next to their sources work without any
// manifest; this package is for the ones that declare their iOS
// contribution explicitly.
package pluginspec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/podmerge/pkg/errors"
	"github.com/arthur-debert/podmerge/pkg/types"
)

// ManifestFileName is the conventional plugin manifest name.
const ManifestFileName = "plugin.xml"

// Pod is an inline pod declaration from the manifest.
type Pod struct {
	Name string
	Spec string
}

// Spec describes a plugin's iOS contribution.
type Spec struct {
	// ID is the plugin identifier, used as the owner id.
	ID string

	// FragmentPath is the absolute path of the plugin's Podfile
	// fragment, empty when the manifest declares none.
	FragmentPath string

	// Pods are inline declarations rendered into a synthetic fragment
	// when no Podfile fragment is shipped.
	Pods []Pod
}

// Load reads and parses the plugin manifest in dir. The plugin id falls
// back to the directory name when the manifest omits it.
func Load(filesystem types.FS, dir string) (*Spec, error) {
	path := filepath.Join(dir, ManifestFileName)
	raw, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginSpecParse, "failed to read plugin manifest %q", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginSpecParse, "failed to parse plugin manifest %q", path)
	}

	root := doc.SelectElement("plugin")
	if root == nil {
		return nil, errors.Newf(errors.ErrPluginSpecParse, "plugin manifest %q has no <plugin> root", path)
	}

	spec := &Spec{ID: root.SelectAttrValue("id", filepath.Base(dir))}

	for _, p := range root.SelectElements("platform") {
		if p.SelectAttrValue("name", "") != "ios" {
			continue
		}
		if pf := p.SelectElement("podfile"); pf != nil {
			src := pf.SelectAttrValue("src", "Podfile")
			spec.FragmentPath = filepath.Join(dir, src)
		}
		for _, pod := range p.SelectElements("pod") {
			name := pod.SelectAttrValue("name", "")
			if name == "" {
				continue
			}
			spec.Pods = append(spec.Pods, Pod{
				Name: name,
				Spec: pod.SelectAttrValue("spec", ""),
			})
		}
	}

	return spec, nil
}

// SyntheticFragment renders inline pod declarations into fragment text.
// Returns "" when the spec declares no pods.
func (s *Spec) SyntheticFragment() string {
	if len(s.Pods) == 0 {
		return ""
	}
	var b strings.Builder
	for _, pod := range s.Pods {
		if pod.Spec != "" {
			fmt.Fprintf(&b, "pod '%s', '%s'\n", pod.Name, pod.Spec)
		} else {
			fmt.Fprintf(&b, "pod '%s'\n", pod.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
