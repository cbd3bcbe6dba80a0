package reconcile

import (
	"reflect"
	"testing"

	"github.com/medibook/appointment-engine/models"
)

var session = models.SessionContext{UserID: "u1", DisplayName: "Jane Doe"}

func localRec(date, tm string) models.AppointmentRecord {
	return models.AppointmentRecord{
		LocalID:      "local-1",
		PatientID:    "u1",
		PatientName:  "Jane Doe",
		PatientPhone: "+1-555-0101",
		PatientEmail: "jane@example.com",
		Date:         date,
		Time:         tm,
		Status:       models.StatusPending,
		Provenance:   models.ProvenanceLocal,
	}
}

func remoteRec(id, date, tm string) models.AppointmentRecord {
	return models.AppointmentRecord{
		ID:          id,
		PatientName: "Jane Doe",
		Date:        date,
		Time:        tm,
		Status:      models.StatusConfirmed,
		Provenance:  models.ProvenanceRemote,
	}
}

func TestMerge_LocalShadowsRemote(t *testing.T) {
	local := []models.AppointmentRecord{localRec("2024-05-01", "10:00")}
	remote := []models.AppointmentRecord{remoteRec("srv-9", "2024-05-01", "10:00")}

	got := Merge(remote, local, session, Ascending)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1 merged", len(got))
	}
	m := got[0]
	if m.PatientPhone != "+1-555-0101" {
		t.Errorf("merged phone = %q, want the local record's", m.PatientPhone)
	}
	if m.ID != "srv-9" {
		t.Errorf("server identity not backfilled: %q", m.ID)
	}
	if m.Provenance != models.ProvenanceLocal {
		t.Errorf("merged record should be the local one, got provenance %s", m.Provenance)
	}
	if m.Status != models.StatusPending {
		t.Errorf("local status must win, got %s", m.Status)
	}
}

func TestMerge_RemoteTimestampNormalizedForKeying(t *testing.T) {
	local := []models.AppointmentRecord{localRec("2024-05-01", "10:00")}
	remote := []models.AppointmentRecord{remoteRec("srv-9", "2024-05-01T00:00:00Z", "10:00")}

	got := Merge(remote, local, session, Ascending)
	if len(got) != 1 {
		t.Fatalf("timestamp-form date broke keying: %d records", len(got))
	}
}

func TestMerge_LocalOnlySurvives(t *testing.T) {
	local := []models.AppointmentRecord{localRec("2024-05-01", "10:00")}

	got := Merge(nil, local, session, Ascending)
	if len(got) != 1 || got[0].LocalID != "local-1" {
		t.Fatalf("local-only record did not survive: %v", got)
	}
}

func TestMerge_RemoteOnlyPassesThrough(t *testing.T) {
	remote := []models.AppointmentRecord{remoteRec("srv-1", "2024-05-03", "09:00")}

	got := Merge(remote, nil, session, Ascending)
	if len(got) != 1 || got[0].ID != "srv-1" {
		t.Fatalf("remote record did not pass through: %v", got)
	}
}

func TestMerge_OwnershipFilter(t *testing.T) {
	other := localRec("2024-05-01", "10:00")
	other.PatientID = "u2"
	other.PatientName = "Someone Else"

	got := Merge(nil, []models.AppointmentRecord{other}, session, Ascending)
	if len(got) != 0 {
		t.Fatalf("record from another user leaked through: %v", got)
	}
}

func TestMerge_OwnershipFallsBackToDisplayName(t *testing.T) {
	legacy := localRec("2024-05-01", "10:00")
	legacy.PatientID = ""

	got := Merge(nil, []models.AppointmentRecord{legacy}, session, Ascending)
	if len(got) != 1 {
		t.Fatalf("legacy record without patient id excluded: %v", got)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	local := []models.AppointmentRecord{localRec("2024-05-01", "10:00")}
	remote := []models.AppointmentRecord{
		remoteRec("srv-9", "2024-05-01", "10:00"),
		remoteRec("srv-2", "2024-05-02", "11:30"),
	}

	first := Merge(remote, local, session, Ascending)
	second := Merge(remote, local, session, Ascending)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge is not idempotent:\n%v\n%v", first, second)
	}
}

func TestMerge_NoDuplicateKeys(t *testing.T) {
	dupA := localRec("2024-05-01", "10:00")
	dupB := localRec("2024-05-01", "10:00")
	dupB.LocalID = "local-2"
	dupB.PatientPhone = "+1-555-0202"

	remote := []models.AppointmentRecord{
		remoteRec("srv-9", "2024-05-01", "10:00"),
		remoteRec("srv-9b", "2024-05-01", "10:00"), // remote-side duplicate
		remoteRec("srv-2", "2024-05-02", "11:30"),
	}

	got := Merge(remote, []models.AppointmentRecord{dupA, dupB}, session, Ascending)
	seen := map[models.ReconKey]bool{}
	for _, r := range got {
		if seen[r.Key()] {
			t.Fatalf("duplicate reconciliation key %v in output", r.Key())
		}
		seen[r.Key()] = true
	}
	// Later local wins the key.
	for _, r := range got {
		if r.Key() == dupB.Key() && r.PatientPhone != "+1-555-0202" {
			t.Errorf("expected the later local record to win, got phone %s", r.PatientPhone)
		}
	}
}

func TestMerge_SortDirections(t *testing.T) {
	remote := []models.AppointmentRecord{
		remoteRec("srv-2", "2024-05-02", "11:30"),
		remoteRec("srv-1", "2024-05-01", "10:00"),
		remoteRec("srv-3", "2024-05-02", "09:00"),
	}

	asc := Merge(remote, nil, session, Ascending)
	if asc[0].ID != "srv-1" || asc[1].ID != "srv-3" || asc[2].ID != "srv-2" {
		t.Errorf("ascending order wrong: %s %s %s", asc[0].ID, asc[1].ID, asc[2].ID)
	}

	desc := Merge(remote, nil, session, Descending)
	if desc[0].ID != "srv-2" || desc[2].ID != "srv-1" {
		t.Errorf("descending order wrong: %s %s %s", desc[0].ID, desc[1].ID, desc[2].ID)
	}
}

func TestMerge_OfflineScenario(t *testing.T) {
	// Booking created offline, then a remote fetch returns the same key
	// without the phone number: the merged record keeps the local phone.
	local := []models.AppointmentRecord{localRec("2024-05-01", "10:00")}
	remote := []models.AppointmentRecord{remoteRec("srv-7", "2024-05-01", "10:00")}

	got := Merge(remote, local, session, Ascending)
	if len(got) != 1 || got[0].PatientPhone != "+1-555-0101" {
		t.Fatalf("offline booking lost its contact details: %v", got)
	}

	// Remote fetch fails entirely: merge with empty remote returns exactly
	// the local contents.
	got = Merge(nil, local, session, Ascending)
	if len(got) != 1 || got[0].LocalID != "local-1" {
		t.Fatalf("degraded merge should equal the local store: %v", got)
	}
}
