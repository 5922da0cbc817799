package ingestion

import (
	"errors"
	"testing"
)

func TestParseROBReport(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "valid_report",
			payload: `{"imo":"9734567","rob":{"VLSFO":590.2,"LSMGO":84.1}}`,
		},
		{
			name:    "missing_imo",
			payload: `{"rob":{"VLSFO":590.2}}`,
			wantErr: ErrMissingIMO,
		},
		{
			name:    "empty_rob",
			payload: `{"imo":"9734567","rob":{}}`,
			wantErr: ErrEmptyROB,
		},
		{
			name:    "negative_quantity",
			payload: `{"imo":"9734567","rob":{"VLSFO":-3}}`,
			wantErr: ErrNegativeROB,
		},
		{
			name:    "unknown_grade",
			payload: `{"imo":"9734567","rob":{"HFO":120}}`,
			wantErr: ErrUnknownGrade,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseROBReport([]byte(tt.payload))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if msg.IMO != "9734567" {
				t.Errorf("Expected IMO 9734567, got %s", msg.IMO)
			}
			if got := msg.ROB["VLSFO"]; got != 590.2 {
				t.Errorf("Expected VLSFO 590.2, got %.1f", got)
			}
		})
	}
}

func TestParseROBReport_MalformedJSON(t *testing.T) {
	_, err := ParseROBReport([]byte(`{"imo":`))
	if err == nil {
		t.Fatalf("Expected a decode error")
	}
}

func TestParsePositionReport(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "valid_report",
			payload: `{"imo":"9734567","lat":-6.12,"lon":39.85,"speed_knots":12.6,"heading_deg":74}`,
		},
		{
			name:    "missing_imo",
			payload: `{"lat":-6.12,"lon":39.85}`,
			wantErr: ErrMissingIMO,
		},
		{
			name:    "latitude_out_of_range",
			payload: `{"imo":"9734567","lat":91,"lon":0}`,
			wantErr: ErrInvalidLatitude,
		},
		{
			name:    "longitude_out_of_range",
			payload: `{"imo":"9734567","lat":0,"lon":-181}`,
			wantErr: ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParsePositionReport([]byte(tt.payload))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if msg.SpeedKnots != 12.6 {
				t.Errorf("Expected speed 12.6, got %.1f", msg.SpeedKnots)
			}
		})
	}
}
