package file

import (
	"github.com/jsphweid/formdex/model"
)

func CreatePieceNumMap(paths []string) model.PieceNumToPath {
	res := make(model.PieceNumToPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
