package session

// CompletenessMessages reports which buyer fields are still missing for
// the session to become completable. The result is built from scratch
// each time; previous messages are never carried over.
func CompletenessMessages(b Buyer) []Message {
	msgs := make([]Message, 0, 2)
	if b.Email == "" {
		msgs = append(msgs, Message{
			Type:     MessageTypeError,
			Code:     CodeMissing,
			Severity: SeverityRecoverable,
			Content:  "Buyer email is required to complete checkout.",
			Path:     "$.buyer.email",
		})
	}
	if b.FullName == "" {
		msgs = append(msgs, Message{
			Type:     MessageTypeError,
			Code:     CodeMissing,
			Severity: SeverityRecoverable,
			Content:  "Buyer full name is required to complete checkout.",
			Path:     "$.buyer.full_name",
		})
	}
	return msgs
}

// NotReadyMessage accompanies a rejected complete call. It is surfaced
// on the response only; the stored session keeps its own message set.
func NotReadyMessage() Message {
	return Message{
		Type:     MessageTypeError,
		Code:     CodeNotReady,
		Severity: SeverityRequiresBuyerInput,
		Content:  "Checkout session is not ready to complete.",
	}
}

func ConfirmationMessage(permalink string) Message {
	return Message{
		Type:     MessageTypeInfo,
		Code:     CodeOrderConfirmed,
		Severity: SeverityRecoverable,
		Content:  "Order confirmed. See " + permalink + " for details.",
	}
}
