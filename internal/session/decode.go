package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Krimson/fluid-balance/internal/balance"
)

// inputsPresence отмечает поля, которые клиент указал явно
type inputsPresence struct {
	Output struct {
		UrineVolumePerEvent *float64 `json:"urine_volume_per_event"`
	} `json:"output"`
}

// DecodeInputs декодирует набор входных данных поверх значений новой формы.
// Отсутствующие поля берут значения по умолчанию; объем порции мочи,
// если не указан, считается по массе тела.
func DecodeInputs(data []byte) (balance.Inputs, error) {
	in := balance.DefaultInputs()
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return balance.Inputs{}, fmt.Errorf("failed to decode inputs: %w", err)
	}

	var presence inputsPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return balance.Inputs{}, fmt.Errorf("failed to decode inputs: %w", err)
	}
	if presence.Output.UrineVolumePerEvent == nil {
		in.Output.UrineVolumePerEvent = balance.DefaultVoidVolume(in.Patient.Weight)
	}
	return in, nil
}

// requestEnvelope общий вид тел с вложенными inputs
type requestEnvelope struct {
	Inputs   json.RawMessage `json:"inputs"`
	Recorder string          `json:"recorder"`
}

func decodeEnvelope(data []byte) (balance.Inputs, string, error) {
	var env requestEnvelope
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &env); err != nil {
			return balance.Inputs{}, "", fmt.Errorf("failed to decode request: %w", err)
		}
	}

	in, err := DecodeInputs(env.Inputs)
	if err != nil {
		return balance.Inputs{}, "", err
	}
	return in, env.Recorder, nil
}

// DecodeCreateSessionRequest тело POST /api/sessions; пустое тело дает форму по умолчанию
func DecodeCreateSessionRequest(data []byte) (*CreateSessionRequest, error) {
	in, recorder, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	return &CreateSessionRequest{Inputs: in, Recorder: recorder}, nil
}

// DecodeReportRequest тело POST /api/report
func DecodeReportRequest(data []byte) (*ReportRequest, error) {
	in, recorder, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	return &ReportRequest{Inputs: in, Recorder: recorder}, nil
}
