package local

import (
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/goto/foundry/client/local/model"
	"github.com/goto/foundry/internal/errors"
)

const entitySpecReader = "spec_reader"

// PlanSpecReader loads and validates plan specs from a filesystem.
type PlanSpecReader struct {
	specFS afero.Fs
}

func NewPlanSpecReader(specFS afero.Fs) *PlanSpecReader {
	return &PlanSpecReader{specFS: specFS}
}

// ReadByPath reads the yaml plan spec at the given path and validates it.
func (p *PlanSpecReader) ReadByPath(filePath string) (*model.PlanSpec, error) {
	if filePath == "" {
		return nil, errors.InvalidArgument(entitySpecReader, "file path is empty")
	}
	content, err := afero.ReadFile(p.specFS, filePath)
	if err != nil {
		return nil, errors.InternalError(entitySpecReader, "unable to read plan spec from "+filePath, err)
	}

	var spec model.PlanSpec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return nil, errors.InvalidArgument(entitySpecReader, "unable to parse plan spec from "+filePath+": "+err.Error())
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
