package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heoga/fitness/internal/stream"
)

func floatPtr(f float64) *float64 {
	return &f
}

const sampleTCX = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
  <Activities>
    <Activity Sport="Running">
      <Id>2017-05-04T15:04:05.000Z</Id>
      <Lap StartTime="2017-05-04T15:04:05.000Z">
        <Track>
          <Trackpoint>
            <Time>2017-05-04T15:04:05.000Z</Time>
            <Position>
              <LatitudeDegrees>39.7</LatitudeDegrees>
              <LongitudeDegrees>-105.0</LongitudeDegrees>
            </Position>
            <AltitudeMeters>1600.0</AltitudeMeters>
            <DistanceMeters>0.0</DistanceMeters>
            <HeartRateBpm>
              <Value>120</Value>
            </HeartRateBpm>
            <Extensions>
              <TPX>
                <Speed>2.5</Speed>
              </TPX>
            </Extensions>
          </Trackpoint>
          <Trackpoint>
            <Time>2017-05-04T15:04:15.000Z</Time>
            <Position>
              <LatitudeDegrees>39.701</LatitudeDegrees>
              <LongitudeDegrees>-105.001</LongitudeDegrees>
            </Position>
            <AltitudeMeters>1605.0</AltitudeMeters>
            <DistanceMeters>25.0</DistanceMeters>
            <HeartRateBpm>
              <Value>130</Value>
            </HeartRateBpm>
            <Cadence>85</Cadence>
          </Trackpoint>
        </Track>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func writeTempTCX(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity.tcx")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReadTCX(t *testing.T) {
	recording, err := ReadTCX(writeTempTCX(t, sampleTCX))
	if err != nil {
		t.Fatalf("ReadTCX() error = %v", err)
	}

	if recording.Name != "Running 2017-05-04 15:04" {
		t.Errorf("Name = %q, want %q", recording.Name, "Running 2017-05-04 15:04")
	}
	if len(recording.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(recording.Points))
	}

	first := recording.Points[0]
	if first.RawTime != "2017-05-04T15:04:05.000Z" {
		t.Errorf("RawTime = %q", first.RawTime)
	}
	if first.Latitude == nil || *first.Latitude != 39.7 {
		t.Errorf("Latitude = %v, want 39.7", first.Latitude)
	}
	if first.Longitude == nil || *first.Longitude != -105.0 {
		t.Errorf("Longitude = %v, want -105", first.Longitude)
	}
	if first.HeartRate == nil || *first.HeartRate != 120 {
		t.Errorf("HeartRate = %v, want 120", first.HeartRate)
	}
	if first.Speed == nil || *first.Speed != 2.5 {
		t.Errorf("Speed = %v, want 2.5", first.Speed)
	}
	if first.Cadence != nil {
		t.Errorf("Cadence = %v, want nil on first point", first.Cadence)
	}

	second := recording.Points[1]
	if second.Cadence == nil || *second.Cadence != 85 {
		t.Errorf("Cadence = %v, want 85", second.Cadence)
	}
	if second.Distance == nil || *second.Distance != 25 {
		t.Errorf("Distance = %v, want 25", second.Distance)
	}
}

func TestReadTCXEmpty(t *testing.T) {
	path := writeTempTCX(t, `<?xml version="1.0"?><TrainingCenterDatabase></TrainingCenterDatabase>`)
	if _, err := ReadTCX(path); err == nil {
		t.Fatal("ReadTCX() expected an error for a file with no activities")
	}
}

func TestReadFileDispatch(t *testing.T) {
	if _, err := ReadFile("activity.gpx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadFile(gpx) error = %v, want ErrUnsupportedFormat", err)
	}

	recording, err := ReadFile(writeTempTCX(t, sampleTCX))
	if err != nil {
		t.Fatalf("ReadFile(tcx) error = %v", err)
	}
	if len(recording.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(recording.Points))
	}
}

func TestSummarize(t *testing.T) {
	base := time.Date(2017, 5, 4, 15, 4, 5, 0, time.UTC)
	points := []stream.Point{
		{Time: base, Distance: floatPtr(0), Altitude: floatPtr(1600)},
		{Time: base.Add(10 * time.Second), Altitude: floatPtr(1605)},
		{Time: base.Add(20 * time.Second), Distance: floatPtr(50), Altitude: floatPtr(1603)},
		{Time: base.Add(30 * time.Second), Distance: floatPtr(80), Altitude: floatPtr(1607)},
	}

	got := Summarize(points)
	if !got.Time.Equal(base) {
		t.Errorf("Time = %v, want %v", got.Time, base)
	}
	if got.Duration != 30 {
		t.Errorf("Duration = %d, want 30", got.Duration)
	}
	if got.Distance != 80 {
		t.Errorf("Distance = %v, want 80 (last recorded)", got.Distance)
	}
	// Climb counts only the positive deltas: +5 and +4.
	if got.Elevation != 9 {
		t.Errorf("Elevation = %v, want 9", got.Elevation)
	}
	if got.Samples != 4 {
		t.Errorf("Samples = %d, want 4", got.Samples)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.Samples != 0 || got.Distance != 0 || got.Duration != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", got)
	}
}

func TestRawStreamKeysPreserveOrder(t *testing.T) {
	base := time.Date(2017, 5, 4, 15, 4, 5, 0, time.UTC)
	points := []stream.Point{
		{Time: base},
		{Time: base.Add(10 * time.Second)},
		{Time: base.Add(20 * time.Second)},
	}

	raw := RawStream(points)
	if len(raw) != 3 {
		t.Fatalf("len(raw) = %d, want 3", len(raw))
	}
	if _, ok := raw["point-00000"]; !ok {
		t.Error("missing key point-00000")
	}
	if !raw["point-00002"].Time.Equal(base.Add(20 * time.Second)) {
		t.Errorf("point-00002 = %v, want last point", raw["point-00002"].Time)
	}
}
