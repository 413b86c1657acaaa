package config

import (
	"bytes"
	"os"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"taxi-zebra/internal/domain"
)

// SaveAlias rewrites the aliases section of the configuration file so that
// name points to m. The rest of the file, comments included, is kept.
func (c *Config) SaveAlias(name string, m domain.Mapping) error {
	if c.path == "" {
		return errors.New("config was not loaded from a file")
	}
	info, err := os.Stat(c.path)
	if err != nil {
		return errors.Wrap(err, "stat config")
	}
	b, err := os.ReadFile(c.path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	out, err := setAlias(b, name, Alias{Backend: m.Backend, Mapping: m.String()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, out, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "write config")
	}
	if c.Aliases == nil {
		c.Aliases = map[string]Alias{}
	}
	c.Aliases[name] = Alias{Backend: m.Backend, Mapping: m.String()}
	return nil
}

func setAlias(src []byte, name string, a Alias) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("config root is not a mapping")
	}
	root := doc.Content[0]

	aliases := lookup(root, "aliases")
	if aliases == nil || aliases.Kind != yaml.MappingNode {
		node := &yaml.Node{Kind: yaml.MappingNode}
		if aliases != nil {
			*aliases = *node
		} else {
			root.Content = append(root.Content, scalar("aliases"), node)
		}
		aliases = lookup(root, "aliases")
	}

	var value yaml.Node
	if err := value.Encode(a); err != nil {
		return nil, errors.Wrap(err, "encode alias")
	}
	if existing := lookup(aliases, name); existing != nil {
		*existing = value
	} else {
		aliases.Content = append(aliases.Content, scalar(name), &value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return buf.Bytes(), nil
}

// lookup returns the value node of key in a mapping node.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
