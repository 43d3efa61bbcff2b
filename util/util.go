package util

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/formdex/constants"
	"golang.org/x/exp/constraints"
)

func RecreateOutputDir() {
	dir := constants.GetOutDir()
	os.RemoveAll(dir)
	os.MkdirAll(dir, 0777)
}

func GatherAllMidiPaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			lower := strings.ToLower(s)
			if strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func CreateBinary(filename string, data any) {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)

	err := encoder.Encode(data)
	if err != nil {
		panic(err)
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Println("Couldn't open file: "+filename, err)
	}
	defer f.Close()

	_, err = f.Write(buf.Bytes())
	if err != nil {
		fmt.Println("Write failed for file: "+filename, err)
	}
}

func ReadBinaryOrPanic[A any](path string) A {
	f, err := os.Open(path)
	if err != nil {
		panic("Could not load binary file: " + err.Error())
	}
	defer f.Close()

	var data A
	decoder := gob.NewDecoder(f)
	err = decoder.Decode(&data)
	if err != nil {
		panic("Could not decode binary file: " + err.Error())
	}

	return data
}

func CreateJSON(filename string, data any) error {
	dat, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, dat, 0777)
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName converts a midi pitch number to its name, e.g. 60 -> C4.
func NoteName(pitch uint8) string {
	octave := int(pitch)/12 - 1
	return fmt.Sprintf("%v%v", noteNames[pitch%12], octave)
}

// BeatLabel renders a sixteenth-note position as a beat label in
// counting syllables: "Beat 2", "Beat 2+", "Beat 2&", "Beat 2a".
func BeatLabel(position int) string {
	beat := position/4 + 1
	switch position % 4 {
	case 1:
		return fmt.Sprintf("Beat %v+", beat)
	case 2:
		return fmt.Sprintf("Beat %v&", beat)
	case 3:
		return fmt.Sprintf("Beat %va", beat)
	default:
		return fmt.Sprintf("Beat %v", beat)
	}
}
