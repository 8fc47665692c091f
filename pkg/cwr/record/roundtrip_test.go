package record

import (
	"testing"

	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// assertRoundTrip formats rec, parses the result back at v, reformats the
// parsed value, and checks the two formatted lines match — a record
// survives a write/read/write cycle without drifting, regardless of
// whether the field values happen to equal what was passed in (Format
// may canonicalize, e.g. zero-date sentinels).
func assertRoundTrip[T any](t *testing.T, sch schema.RecordSchema[T], v version.Version, rec T) {
	t.Helper()

	first, err := schema.FormatRecord(rec, sch, v)
	if err != nil {
		t.Fatalf("initial FormatRecord: %v", err)
	}
	if len(first) != sch.Length(v) {
		t.Fatalf("formatted length %d, want %d", len(first), sch.Length(v))
	}

	parsed, warnings := schema.ParseRecordAt(first, sch, v)
	for _, w := range warnings {
		if w.IsCritical() {
			t.Fatalf("unexpected critical warning parsing a freshly formatted line: %v", w)
		}
	}

	second, err := schema.FormatRecord(parsed, sch, v)
	if err != nil {
		t.Fatalf("second FormatRecord: %v", err)
	}
	if first != second {
		t.Fatalf("round trip drifted:\n  first:  %q\n  second: %q", first, second)
	}
}

func TestHdrRoundTrip(t *testing.T) {
	rec := Hdr{
		RecordType:               "HDR",
		SenderType:               "PB",
		SenderID:                 "226144452",
		SenderName:               "ACME MUSIC PUBLISHING",
		EdiStandardVersionNumber: "01.10",
		CreationDate:             "20260115",
		CreationTime:             "093000",
		TransmissionDate:         "20260115",
	}
	assertRoundTrip(t, HdrSchema, version.V20, rec)
}

func TestGrhRoundTrip(t *testing.T) {
	rec := Grh{
		RecordType:                 "GRH",
		TransactionType:            "NWR",
		GroupID:                    "00001",
		VersionNumber:              "02.20",
		SubmissionDistributionType: "RO",
	}
	assertRoundTrip(t, GrhSchema, version.V22, rec)
}

func TestGrtRoundTrip(t *testing.T) {
	rec := Grt{
		RecordType:       "GRT",
		GroupID:          "00001",
		TransactionCount: "00000010",
		RecordCount:      "00000042",
	}
	assertRoundTrip(t, GrtSchema, version.V20, rec)
}

func TestTrlRoundTrip(t *testing.T) {
	rec := Trl{
		RecordType:       "TRL",
		GroupCount:       "00001",
		TransactionCount: "00000010",
		RecordCount:      "00000042",
	}
	assertRoundTrip(t, TrlSchema, version.V22, rec)
}

func TestComRoundTrip(t *testing.T) {
	rec := Com{
		RecordType:             "COM",
		TransactionSequenceNum: "00000001",
		RecordSequenceNum:      "00000005",
		Title:                  "A COMPONENT TITLE",
		Writer1LastName:        "SMITH",
		Writer1FirstName:       "JANE",
	}
	assertRoundTrip(t, ComSchema, version.V22, rec)
}

func TestMsgRoundTrip(t *testing.T) {
	rec := Msg{
		RecordType:                "MSG",
		TransactionSequenceNum:    "00000001",
		RecordSequenceNum:         "00000002",
		MessageType:               "G",
		OriginalRecordSequenceNum: "00000001",
		RecordTypeField:           "NWR",
		MessageLevel:              "T",
		ValidationNumber:          "001",
		MessageText:               "TITLE DOES NOT MATCH A PRIOR SUBMISSION",
	}
	assertRoundTrip(t, MsgSchema, version.V20, rec)
}

func TestNwrRoundTrip(t *testing.T) {
	rec := Nwr{
		RecordType:                       "NWR",
		TransactionSequenceNum:           "00000001",
		RecordSequenceNum:                "00000001",
		WorkTitle:                        "MY SONG",
		LanguageCode:                     "EN",
		SubmitterWorkNum:                 "SW0001",
		MusicalWorkDistributionCategory:  "POP",
		RecordedIndicator:                "Y",
		TextMusicRelationship:            "MUS",
		CompositeType:                    "MED",
		VersionType:                      "ORI",
		MusicArrangement:                 "NEW",
		LyricAdaptation:                  "NEW",
		CwrWorkType:                      "PP",
	}
	for _, tag := range NwrTags {
		rec.RecordType = tag
		assertRoundTrip(t, NwrSchema, version.V22, rec)
	}
}

func TestIpaRoundTrip(t *testing.T) {
	rec := Ipa{
		RecordType:                "IPA",
		TransactionSequenceNum:    "00000001",
		RecordSequenceNum:         "00000002",
		AgreementRoleCode:         "AS",
		InterestedPartyIpiNameNum: "00000000123",
		InterestedPartyLastName:   "PUBLISHER NAME",
	}
	assertRoundTrip(t, IpaSchema, version.V22, rec)
}

func TestAgrRoundTrip(t *testing.T) {
	rec := Agr{
		RecordType:                "AGR",
		TransactionSequenceNum:    "00000001",
		RecordSequenceNum:         "00000001",
		SubmitterAgreementNumber:  "SA0001",
		AgreementType:             "OS",
		AgreementStartDate:        "20260101",
		NumberOfWorks:             domain.WorksCount(3),
	}
	assertRoundTrip(t, AgrSchema, version.V21, rec)
}

func TestAckRoundTrip(t *testing.T) {
	rec := Ack{
		RecordType:                    "ACK",
		TransactionSequenceNum:        "00000001",
		RecordSequenceNum:             "00000001",
		CreationDate:                  "20260115",
		CreationTime:                  "093000",
		OriginalTransactionType:       "NWR",
		CreationTitle:                 "MY SONG",
		TransactionStatus:             "AS",
	}
	assertRoundTrip(t, AckSchema, version.V22, rec)
}

func TestTerRoundTrip(t *testing.T) {
	rec := Ter{
		RecordType:                  "TER",
		TransactionSequenceNum:      "00000001",
		RecordSequenceNum:           "00000003",
		InclusionExclusionIndicator: "I",
		TisNumericCode:              "0826",
	}
	assertRoundTrip(t, TerSchema, version.V22, rec)
}
