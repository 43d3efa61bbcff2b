package shard

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
	"github.com/jsphweid/formdex/catalog"
	"github.com/jsphweid/formdex/constants"
	"github.com/jsphweid/formdex/util"
)

var shardName = regexp.MustCompile(`\.shard$`)

// WritePartial persists one piece's partial catalog under a unique
// filename so a batch run never has to coordinate writers.
func WritePartial(c catalog.Catalog) string {
	name := uuid.New().String() + ".shard"
	util.CreateBinary(filepath.Join(constants.GetOutDir(), name), c)
	return name
}

// MergeAll folds every shard in the out dir into one catalog. Merge is
// commutative and associative, so directory order does not matter.
func MergeAll() catalog.Catalog {
	res := catalog.New()

	files, err := ioutil.ReadDir(constants.GetOutDir())
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	for _, f := range files {
		if shardName.MatchString(f.Name()) {
			path := filepath.Join(constants.GetOutDir(), f.Name())
			partial := util.ReadBinaryOrPanic[catalog.Catalog](path)
			res.Merge(partial)
		}
	}

	return res
}

// DeleteAll removes shard files after a merge.
func DeleteAll() {
	files, err := ioutil.ReadDir(constants.GetOutDir())
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}
	for _, f := range files {
		if shardName.MatchString(f.Name()) {
			os.Remove(filepath.Join(constants.GetOutDir(), f.Name()))
		}
	}
}
