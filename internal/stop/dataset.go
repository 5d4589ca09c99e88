package stop

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/pkg/fileutil"
)

// Dataset is the full ordered list of records from one input file.
type Dataset []Record

// Load reads a dataset from a JSON file. The top-level value must be a
// list of objects. Numbers are decoded as json.Number so that fixed
// output round-trips the original literals verbatim.
func Load(path string) (Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrapf(errors.ErrFileNotFound, "%s", path)
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	return Decode(data)
}

// Decode parses a JSON document into a Dataset.
func Decode(data []byte) (Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, errors.Wrap(err, "parsing JSON")
	}

	list, ok := top.([]any)
	if !ok {
		return nil, errors.ErrNotAList
	}

	ds := make(Dataset, 0, len(list))
	for i, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, errors.Newf("row %d: not a JSON object", i+1)
		}
		ds = append(ds, Record(obj))
	}
	return ds, nil
}

// Write serializes the dataset as pretty-printed JSON (2-space indent,
// non-ASCII preserved literally) and writes it atomically to path.
func (ds Dataset) Write(path string) error {
	return errors.Wrapf(fileutil.AtomicWriteJSON(path, ds), "writing %s", path)
}
