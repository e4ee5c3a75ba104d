package out

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"brightbuddy/internal/modules/routine/domain"
	routineout "brightbuddy/internal/modules/routine/port/out"
)

const routineFileVersion = 1

type routineFile struct {
	Version int      `yaml:"version"`
	Tasks   []string `yaml:"tasks"`
}

type YAMLCodec struct{}

func NewYAMLCodec() routineout.DefinitionCodec {
	return YAMLCodec{}
}

func (YAMLCodec) Encode(definition domain.Definition) ([]byte, error) {
	tasks := []string(definition)
	if tasks == nil {
		tasks = []string{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(routineFile{Version: routineFileVersion, Tasks: tasks}); err != nil {
		return nil, fmt.Errorf("encode routine file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode routine file: %w", err)
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Decode(data []byte) (domain.Definition, error) {
	var file routineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode routine file: %w", err)
	}
	if file.Version > routineFileVersion {
		return nil, fmt.Errorf("routine file version %d is newer than supported %d", file.Version, routineFileVersion)
	}
	if file.Tasks == nil {
		return nil, fmt.Errorf("routine file has no tasks list")
	}
	out := make(domain.Definition, 0, len(file.Tasks))
	for _, task := range file.Tasks {
		label, err := domain.NormalizeLabel(task)
		if err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	return out, nil
}
