//go:build unit

package agreement_test

import (
	"testing"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolveSignatures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*builder.AgreementBuilder)
		expected agreement.SignatureStatus
	}{
		{
			name: "no customer signature with every admin signal",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("").
					WithUnsignedURL("draft.pdf").
					WithSignedURL("final.pdf")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: false,
				HasAdminSignature:    true,
				IsFullySigned:        false,
				AdminSignal:          agreement.AdminSignalUnsignedDocument,
			},
		},
		{
			name: "no customer signature and no admin signal",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("")
			},
			expected: agreement.SignatureStatus{AdminSignal: agreement.AdminSignalNone},
		},
		{
			name: "unsigned document alone",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("sig.png").WithUnsignedURL("draft.pdf")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				HasAdminSignature:    true,
				IsFullySigned:        true,
				AdminSignal:          agreement.AdminSignalUnsignedDocument,
			},
		},
		{
			name: "embedded snake_case admin signature alone",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature(`{"admin_signature":"abc"}`)
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				HasAdminSignature:    true,
				IsFullySigned:        true,
				AdminSignal:          agreement.AdminSignalEmbeddedJSON,
			},
		},
		{
			name: "embedded camelCase admin signature with nested customer signature",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature(`{"adminSignature":{"image":"a.png"},"customer_signature":"c.png"}`)
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				HasAdminSignature:    true,
				IsFullySigned:        true,
				AdminSignal:          agreement.AdminSignalEmbeddedJSON,
			},
		},
		{
			name: "signed pdf alone",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("sig.png").WithSignedURL("final.pdf")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				HasAdminSignature:    true,
				IsFullySigned:        true,
				AdminSignal:          agreement.AdminSignalSignedPDF,
			},
		},
		{
			name: "signed pdf with query string",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("sig.png").WithSignedURL("https://cdn.example.com/final.pdf?token=x")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				HasAdminSignature:    true,
				IsFullySigned:        true,
				AdminSignal:          agreement.AdminSignalSignedPDF,
			},
		},
		{
			name: "signed url that is not a pdf",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("sig.png").WithSignedURL("final.docx")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				AdminSignal:          agreement.AdminSignalNone,
			},
		},
		{
			name: "malformed json alone",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("{not valid json")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				AdminSignal:          agreement.AdminSignalNone,
			},
		},
		{
			name: "malformed json still falls through to signed pdf",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("{not valid json").WithSignedURL("final.pdf")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				HasAdminSignature:    true,
				IsFullySigned:        true,
				AdminSignal:          agreement.AdminSignalSignedPDF,
			},
		},
		{
			name: "image reference alone",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("sig.png")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				AdminSignal:          agreement.AdminSignalNone,
			},
		},
		{
			name: "status is ignored",
			mutate: func(b *builder.AgreementBuilder) {
				b.WithCustomerSignature("sig.png").WithStatus("signed")
			},
			expected: agreement.SignatureStatus{
				HasCustomerSignature: true,
				AdminSignal:          agreement.AdminSignalNone,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewAgreementBuilder()
			tt.mutate(b)

			assert.Equal(t, tt.expected, agreement.ResolveSignatures(b.Build()))
		})
	}
}

func TestResolveSignatures_EmbeddedTruthiness(t *testing.T) {
	tests := []struct {
		payload string
		signed  bool
	}{
		{`{"admin_signature":"abc"}`, true},
		{`{"admin_signature":""}`, false},
		{`{"admin_signature":true}`, true},
		{`{"admin_signature":false}`, false},
		{`{"admin_signature":1}`, true},
		{`{"admin_signature":0}`, false},
		{`{"admin_signature":null}`, false},
		{`{"admin_signature":{}}`, true},
		{`{"admin_signature":[]}`, true},
		{`{"adminSignature":"x","admin_signature":""}`, true},
		{`{"customer_signature":"c.png"}`, false},
		{`["admin_signature"]`, false},
		{`"admin_signature"`, false},
		{` {"admin_signature":"abc"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			a := builder.NewAgreementBuilder().WithCustomerSignature(tt.payload).Build()

			got := agreement.ResolveSignatures(a)

			assert.Equal(t, tt.signed, got.IsFullySigned)
		})
	}
}

func TestFirstByBooking(t *testing.T) {
	b1, b2 := uuid.New(), uuid.New()
	first := builder.NewAgreementBuilder().WithBookingID(b1).WithCustomerSignature("first").Build()
	second := builder.NewAgreementBuilder().WithBookingID(b1).WithCustomerSignature("second").Build()
	other := builder.NewAgreementBuilder().WithBookingID(b2).Build()
	legacy := builder.NewAgreementBuilder().WithoutBooking().Build()

	got := agreement.FirstByBooking([]agreement.Agreement{first, legacy, second, other})

	assert.Len(t, got, 2)
	assert.Equal(t, first.ID, got[b1].ID)
	assert.Equal(t, other.ID, got[b2].ID)
}
