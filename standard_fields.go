package iso8583

// standardField is one row of the conventional ISO 8583:1987 data element
// table: content class, length discipline, and whether the field is
// commonly mandatory. Adapted into Codec/FieldDef pairs by
// NewStandardFamily.
type standardField struct {
	name      string
	class     Class
	fixed     int // 0 means variable-length
	llvar     bool
	lllvar    bool
	mandatory bool
}

// standardFieldTable is the conventional DE 2-128 table. Fields left out
// here (gaps in the historic table, reserved-for-private-use slots with no
// settled meaning) are simply absent from the returned Family; callers add
// them with DeclareField.
var standardFieldTable = map[int]standardField{
	2:  {name: "primary_account_number", class: N(), llvar: true},
	3:  {name: "processing_code", class: N(), fixed: 6, mandatory: true},
	4:  {name: "amount_transaction", class: N(), fixed: 12, mandatory: true},
	5:  {name: "amount_settlement", class: N(), fixed: 12},
	6:  {name: "amount_cardholder_billing", class: N(), fixed: 12},
	7:  {name: "transmission_date_time", class: DateTime("MMDDhhmmss"), fixed: 10, mandatory: true},
	8:  {name: "amount_cardholder_billing_fee", class: N(), fixed: 8},
	9:  {name: "conversion_rate_settlement", class: N(), fixed: 8},
	10: {name: "conversion_rate_cardholder_billing", class: N(), fixed: 8},
	11: {name: "system_trace_audit_number", class: N(), fixed: 6, mandatory: true},
	12: {name: "time_local_transaction", class: DateTime("hhmmss"), fixed: 6, mandatory: true},
	13: {name: "date_local_transaction", class: DateTime("MMDD"), fixed: 4, mandatory: true},
	14: {name: "date_expiration", class: DateTime("YYMM"), fixed: 4},
	15: {name: "date_settlement", class: DateTime("MMDD"), fixed: 4},
	16: {name: "date_conversion", class: DateTime("MMDD"), fixed: 4},
	17: {name: "date_capture", class: DateTime("MMDD"), fixed: 4},
	18: {name: "merchant_type", class: N(), fixed: 4},
	19: {name: "acquiring_institution_country_code", class: N(), fixed: 3},
	20: {name: "pan_extended_country_code", class: N(), fixed: 3},
	21: {name: "forwarding_institution_country_code", class: N(), fixed: 3},
	22: {name: "point_of_service_entry_mode", class: N(), fixed: 3, mandatory: true},
	23: {name: "application_pan_sequence_number", class: N(), fixed: 3},
	24: {name: "network_international_identifier", class: N(), fixed: 3},
	25: {name: "point_of_service_condition_code", class: N(), fixed: 2, mandatory: true},
	26: {name: "point_of_service_capture_code", class: N(), fixed: 2},
	27: {name: "authorizing_id_response_length", class: N(), fixed: 1},
	28: {name: "amount_transaction_fee", class: N(), fixed: 9},
	29: {name: "amount_settlement_fee", class: N(), fixed: 9},
	30: {name: "amount_transaction_processing_fee", class: N(), fixed: 9},
	31: {name: "amount_settlement_processing_fee", class: N(), fixed: 9},
	32: {name: "acquiring_institution_id_code", class: N(), llvar: true},
	33: {name: "forwarding_institution_id_code", class: N(), llvar: true},
	34: {name: "pan_extended", class: ANS(), llvar: true},
	35: {name: "track_2_data", class: ANS(), llvar: true},
	36: {name: "track_3_data", class: ANS(), lllvar: true},
	37: {name: "retrieval_reference_number", class: ANS(), fixed: 12},
	38: {name: "authorization_id_response", class: ANS(), fixed: 6},
	39: {name: "response_code", class: AN(), fixed: 2},
	40: {name: "service_restriction_code", class: AN(), fixed: 3},
	41: {name: "card_acceptor_terminal_id", class: ANS(), fixed: 8},
	42: {name: "card_acceptor_id_code", class: ANS(), fixed: 15},
	43: {name: "card_acceptor_name_location", class: ANS(), fixed: 40},
	44: {name: "additional_response_data", class: ANS(), llvar: true},
	45: {name: "track_1_data", class: ANS(), llvar: true},
	46: {name: "additional_data_iso", class: ANS(), lllvar: true},
	47: {name: "additional_data_national", class: ANS(), lllvar: true},
	48: {name: "additional_data_private", class: ANS(), lllvar: true},
	49: {name: "currency_code_transaction", class: AN(), fixed: 3, mandatory: true},
	50: {name: "currency_code_settlement", class: AN(), fixed: 3},
	51: {name: "currency_code_cardholder_billing", class: AN(), fixed: 3},
	52: {name: "pin_data", class: B(), fixed: 8},
	53: {name: "security_related_control_information", class: N(), fixed: 16},
	54: {name: "additional_amounts", class: ANS(), lllvar: true},
	55: {name: "icc_data", class: B(), lllvar: true},
	56: {name: "reserved_iso", class: ANS(), lllvar: true},
	57: {name: "reserved_national_57", class: ANS(), lllvar: true},
	58: {name: "reserved_national_58", class: ANS(), lllvar: true},
	59: {name: "reserved_national_59", class: ANS(), lllvar: true},
	60: {name: "reserved_private_60", class: ANS(), lllvar: true},
	61: {name: "reserved_private_61", class: ANS(), lllvar: true},
	62: {name: "reserved_private_62", class: ANS(), lllvar: true},
	63: {name: "reserved_private_63", class: ANS(), lllvar: true},
	64: {name: "message_authentication_code", class: B(), fixed: 8},

	66: {name: "settlement_code", class: N(), fixed: 1},
	67: {name: "extended_payment_code", class: N(), fixed: 2},
	68: {name: "receiving_institution_country_code", class: N(), fixed: 3},
	69: {name: "settlement_institution_country_code", class: N(), fixed: 3},
	70: {name: "network_management_information_code", class: N(), fixed: 3},
	71: {name: "message_number", class: N(), fixed: 4},
	72: {name: "message_number_last", class: N(), fixed: 4},
	73: {name: "date_action", class: DateTime("YYMMDD"), fixed: 6},
	74: {name: "credits_number", class: N(), fixed: 10},
	75: {name: "credits_reversal_number", class: N(), fixed: 10},
	76: {name: "debits_number", class: N(), fixed: 10},
	77: {name: "debits_reversal_number", class: N(), fixed: 10},
	78: {name: "transfer_number", class: N(), fixed: 10},
	79: {name: "transfer_reversal_number", class: N(), fixed: 10},
	80: {name: "inquiries_number", class: N(), fixed: 10},
	81: {name: "authorizations_number", class: N(), fixed: 10},
	82: {name: "credits_processing_fee_amount", class: N(), fixed: 12},
	83: {name: "credits_transaction_fee_amount", class: N(), fixed: 12},
	84: {name: "debits_processing_fee_amount", class: N(), fixed: 12},
	85: {name: "debits_transaction_fee_amount", class: N(), fixed: 12},
	86: {name: "credits_amount", class: N(), fixed: 16},
	87: {name: "credits_reversal_amount", class: N(), fixed: 16},
	88: {name: "debits_amount", class: N(), fixed: 16},
	89: {name: "debits_reversal_amount", class: N(), fixed: 16},
	90: {name: "original_data_elements", class: N(), fixed: 42},
	91: {name: "file_update_code", class: AN(), fixed: 1},
	92: {name: "file_security_code", class: AN(), fixed: 2},
	93: {name: "response_indicator", class: AN(), fixed: 5},
	94: {name: "service_indicator", class: AN(), fixed: 7},
	95: {name: "replacement_amounts", class: ANS(), fixed: 42},
	96: {name: "message_security_code", class: B(), fixed: 8},
	97: {name: "amount_net_settlement", class: N(), fixed: 17},
	98: {name: "payee", class: ANS(), fixed: 25},
	99: {name: "settlement_institution_id_code", class: N(), llvar: true},

	100: {name: "receiving_institution_id_code", class: N(), llvar: true},
	101: {name: "file_name", class: ANS(), llvar: true},
	102: {name: "account_identification_1", class: ANS(), llvar: true},
	103: {name: "account_identification_2", class: ANS(), llvar: true},
	104: {name: "transaction_description", class: ANS(), lllvar: true},
	128: {name: "message_authentication_code_2", class: B(), fixed: 8},
}

// NewStandardFamily returns a Family pre-populated with the conventional
// ISO 8583:1987 data element table (DE 2-104, 128) and the common
// request/response MTI pairs for authorization, financial, and network
// management messages. Callers override individual fields with
// DeclareField and add their own MTIs with DeclareMTI.
func NewStandardFamily(name string) *Family {
	f := NewFamily(name)

	for number, sf := range standardFieldTable {
		var length Length
		switch {
		case sf.llvar:
			length = LLVar()
		case sf.lllvar:
			length = LLLVar()
		default:
			length = FixedLen(sf.fixed)
		}
		_ = f.DeclareField(&FieldDef{
			Number:    number,
			Name:      sf.name,
			Codec:     NewCodec(sf.class, length),
			Mandatory: sf.mandatory,
		})
	}

	for _, pair := range [][2]string{
		{"0100", "authorization_request"},
		{"0110", "authorization_response"},
		{"0200", "financial_request"},
		{"0210", "financial_response"},
		{"0400", "reversal_request"},
		{"0410", "reversal_response"},
		{"0420", "reversal_advice"},
		{"0430", "reversal_advice_response"},
		{"0800", "network_management_request"},
		{"0810", "network_management_response"},
	} {
		_ = f.DeclareMTI(pair[0], pair[1])
	}

	aliases := map[string]int{
		"pan":            2,
		"processing_code": 3,
		"amount":         4,
		"stan":           11,
		"response_code":  39,
	}
	for alias, number := range aliases {
		_ = f.DeclareAlias(alias, number)
	}

	f.SetValidator(NewValidatorFromFamily(f))
	return f
}
