package parquetfile

import (
	"errors"

	"github.com/spf13/afero"
)

type Config struct {
	Path string
	Fs   afero.Fs // defaults to the OS filesystem
}

func (c *Config) validate() error {
	if c.Path == "" {
		return errors.New("parquetfile: empty input path")
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	return nil
}
