package agreement

import (
	"encoding/json"
	"strings"
)

type AdminSignal string

const (
	AdminSignalNone             AdminSignal = "none"
	AdminSignalUnsignedDocument AdminSignal = "unsigned_document"
	AdminSignalEmbeddedJSON     AdminSignal = "embedded_json"
	AdminSignalSignedPDF        AdminSignal = "signed_pdf"
)

type SignatureStatus struct {
	HasCustomerSignature bool
	HasAdminSignature    bool
	IsFullySigned        bool
	AdminSignal          AdminSignal
}

// ResolveSignatures derives whether both parties signed from the artifacts on
// the agreement.
//
// Status is informational only; signature completeness is derived. The status
// column has drifted from the real document state in production, so it is
// never read here.
//
// Admin signals are tried in order and the first match is reported:
//   - an unsigned agreement document exists (the counter-party signed first)
//   - the customer signature payload is a JSON object with a truthy
//     admin_signature or adminSignature key
//   - the signed agreement URL points at a PDF
//
// Admin signals are evaluated even without a customer signature so callers can
// log both flags.
func ResolveSignatures(a Agreement) SignatureStatus {
	st := SignatureStatus{
		HasCustomerSignature: a.CustomerSignatureData != "",
		AdminSignal:          adminSignal(a),
	}
	st.HasAdminSignature = st.AdminSignal != AdminSignalNone
	st.IsFullySigned = st.HasCustomerSignature && st.HasAdminSignature
	return st
}

func adminSignal(a Agreement) AdminSignal {
	if a.UnsignedAgreementURL != "" {
		return AdminSignalUnsignedDocument
	}
	if embeddedAdminSignature(a.CustomerSignatureData) {
		return AdminSignalEmbeddedJSON
	}
	if a.SignedAgreementURL != "" && strings.Contains(a.SignedAgreementURL, ".pdf") {
		return AdminSignalSignedPDF
	}
	return AdminSignalNone
}

func embeddedAdminSignature(data string) bool {
	obj, ok := parseObject(data)
	if !ok {
		return false
	}
	return truthy(obj["admin_signature"]) || truthy(obj["adminSignature"])
}

// parseObject returns the payload as a JSON object. Anything else, including
// valid JSON arrays, strings and numbers, reports false. Leading whitespace is
// not accepted: stored payloads are written without it.
func parseObject(data string) (map[string]any, bool) {
	if !strings.HasPrefix(data, "{") {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return nil, false
	}
	return obj, obj != nil
}

// truthy mirrors JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		// objects and arrays, empty or not
		return true
	}
}
