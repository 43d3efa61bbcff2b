package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/formdex/analysis"
	"github.com/jsphweid/formdex/catalog"
	"github.com/jsphweid/formdex/constants"
	"github.com/jsphweid/formdex/midi"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servedCatalog catalog.Catalog
var servedRanked []model.RankedPattern
var servedAnalyses map[model.PieceNum]model.Analysis

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves analysis results over HTTP",
	Long:  `Serves analysis results over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles is exported so tests can load a finished run without
// binding a port.
func LoadServeFiles() {
	outDir := constants.GetOutDir()
	servedCatalog = util.ReadBinaryOrPanic[catalog.Catalog](filepath.Join(outDir, constants.CatalogFile))
	servedRanked = servedCatalog.Ranked()
	servedAnalyses = util.ReadBinaryOrPanic[map[model.PieceNum]model.Analysis](filepath.Join(outDir, constants.AnalysesFile))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandlePatterns(w http.ResponseWriter, r *http.Request) {
	limit := len(servedRanked)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, 400, "limit must be a non-negative integer")
			return
		}
		limit = util.Min(limit, parsed)
	}

	res := model.PatternsResponse{
		Total:    len(servedRanked),
		Patterns: servedRanked[:limit],
	}
	json.NewEncoder(w).Encode(res)
}

func HandlePiece(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["num"]
	num, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, 400, "piece number must be an integer")
		return
	}

	a, ok := servedAnalyses[model.PieceNum(num)]
	if !ok {
		writeError(w, 404, fmt.Sprintf("no analysis for piece %v", num))
		return
	}
	json.NewEncoder(w).Encode(a)
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body: "+err.Error())
		return
	}

	parsed, err := midi.ReadMidi(body)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	events, ppqn, err := midi.ExtractNoteEvents(parsed)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	json.NewEncoder(w).Encode(analysis.AnalyzePiece(events, ppqn))
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/patterns", HandlePatterns).Methods("GET")
	router.HandleFunc("/pieces/{num}", HandlePiece).Methods("GET")
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
