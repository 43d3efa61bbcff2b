package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/formdex/catalog"
	"github.com/jsphweid/formdex/constants"
	"github.com/jsphweid/formdex/db"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/util"
	"github.com/spf13/cobra"
)

var reportLimit int
var reportMetadata bool

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 20, "max patterns to print")
	reportCmd.Flags().BoolVar(&reportMetadata, "metadata", false, "look up piece metadata in DynamoDB")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the ranked rhythm pattern catalog",
	Long:  `Prints the ranked rhythm pattern catalog from the last analyze run`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

func subdivisionsString(subdivisions []int) string {
	tokens := make([]string, len(subdivisions))
	for i, s := range subdivisions {
		tokens[i] = fmt.Sprintf("%v", s)
	}
	return "{" + strings.Join(tokens, ",") + "}"
}

func printSupportMetadata(pieces []model.PieceNum, pieceMap model.PieceNumToPath) {
	var paths []string
	for _, num := range pieces[:util.Min(len(pieces), 3)] {
		paths = append(paths, pieceMap[num])
	}
	metadatas := db.GetPieceMetadatas(paths)
	for _, path := range paths {
		if info, ok := metadatas[path]; ok {
			fmt.Printf("      %v - %v (%v)\n", info.Artist, info.Title, info.Year)
		} else {
			fmt.Printf("      %v\n", path)
		}
	}
}

func report() {
	outDir := constants.GetOutDir()
	cat := util.ReadBinaryOrPanic[catalog.Catalog](filepath.Join(outDir, constants.CatalogFile))
	pieceMap := util.ReadBinaryOrPanic[model.PieceNumToPath](filepath.Join(outDir, constants.PieceMapFile))

	ranked := cat.Ranked()
	fmt.Printf("Distinct rhythm patterns: %v\n", len(ranked))
	fmt.Printf("Total measure occurrences: %v\n", cat.TotalOccurrences())
	fmt.Printf("Pieces in corpus: %v\n\n", len(pieceMap))

	for i, rp := range ranked {
		if i >= reportLimit {
			break
		}
		fmt.Printf("#%v %v pieces: %v occurrences: %v\n",
			i+1, subdivisionsString(rp.Subdivisions), rp.SupportCount, rp.Occurrences)
		if reportMetadata {
			printSupportMetadata(rp.Pieces, pieceMap)
		}
	}
}
