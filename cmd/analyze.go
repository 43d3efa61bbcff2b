package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/formdex/analysis"
	"github.com/jsphweid/formdex/catalog"
	"github.com/jsphweid/formdex/constants"
	"github.com/jsphweid/formdex/file"
	"github.com/jsphweid/formdex/midi"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/shard"
	"github.com/jsphweid/formdex/util"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dir> [maxNum]",
	Short: "Analyzes all MIDI files under a directory",
	Long:  `Analyzes all MIDI files under a directory, writes a phrasal-structure JSON side-file per piece and builds the corpus rhythm pattern catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a directory arg...")
		}
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}

		Analyze(args[0], maxNum)
	},
}

func analyzePiece(num model.PieceNum, path string) (model.Analysis, bool) {
	var blank model.Analysis

	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return blank, false
	}

	events, ppqn, err := midi.ExtractNoteEvents(parsed)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return blank, false
	}

	a := analysis.AnalyzePiece(events, ppqn)
	if a.MeasureCount == 0 {
		fmt.Printf("Nothing to analyze in %v\n", path)
		return blank, false
	}

	err = util.CreateJSON(path+".analysis.json", model.NewPhrasalDoc(a))
	if err != nil {
		fmt.Printf("Could not write side-file for %v because: %v\n", path, err)
	}

	partial := catalog.New()
	partial.Add(num, a.RhythmKeys)
	shard.WritePartial(partial)

	return a, true
}

// Analyze is exported so tests can drive a full run.
func Analyze(dir string, maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(dir, maxNum)
	pieceMap := file.CreatePieceNumMap(paths)

	nums := util.GetKeys(pieceMap)
	slices.Sort(nums)

	analyses := make(map[model.PieceNum]model.Analysis)
	debounced := debounce.New(100 * time.Millisecond)
	for i, num := range nums {
		i := i
		debounced(func() {
			fmt.Printf("Processing %v of %v midi files\n", i+1, len(nums))
		})
		if a, ok := analyzePiece(num, pieceMap[num]); ok {
			analyses[num] = a
		}
	}

	merged := shard.MergeAll()
	shard.DeleteAll()

	outDir := constants.GetOutDir()
	util.CreateBinary(filepath.Join(outDir, constants.CatalogFile), merged)
	util.CreateBinary(filepath.Join(outDir, constants.PieceMapFile), pieceMap)
	util.CreateBinary(filepath.Join(outDir, constants.AnalysesFile), analyses)

	fmt.Printf("Analyzed %v of %v pieces, %v distinct rhythm patterns\n",
		len(analyses), len(nums), len(merged))
}
