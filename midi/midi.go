package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/formdex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidi(dat []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &smf.SMF{}, errors.New(errText)
	}
	return ReadMidi(dat)
}

// ExtractNoteEvents reduces track 0 to the note on/off events the
// analysis consumes, plus the file's ticks-per-quarter resolution.
// Only metric time format is supported (SMPTE files are rare and
// carry no usable tick grid).
func ExtractNoteEvents(s *smf.SMF) ([]model.NoteEvent, uint16, error) {
	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, 0, errors.New("unsupported time format, expected MetricTicks")
	}
	ppqn := uint16(metric)

	if len(s.Tracks) == 0 {
		return nil, ppqn, nil
	}

	var events []model.NoteEvent

	// Delta ticks accumulate across skipped events so note timing
	// stays intact even when other messages sit between notes.
	var pendingDelta uint32
	for _, evt := range s.Tracks[0] {
		pendingDelta += evt.Delta
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case evt.Message.GetNoteOn(&channel, &key, &velocity):
			events = append(events, model.NoteEvent{
				Kind:       model.NoteOn,
				Pitch:      key,
				DeltaTicks: pendingDelta,
			})
			pendingDelta = 0
		case evt.Message.GetNoteOff(&channel, &key, &velocity):
			events = append(events, model.NoteEvent{
				Kind:       model.NoteOff,
				Pitch:      key,
				DeltaTicks: pendingDelta,
			})
			pendingDelta = 0
		}
	}

	return events, ppqn, nil
}
