package notify

import (
	"fmt"
	"strings"
)

// Message templates in both client-facing locales. French is the primary
// market, English the fallback; an unknown locale renders English.

type renderedMessage struct {
	Subject string
	Body    string
}

func render(template, locale string, payload map[string]any) renderedMessage {
	if locale != "fr" {
		locale = "en"
	}

	date := str(payload, "date")
	if end := str(payload, "end_date"); end != "" {
		date += " - " + end
	}
	timeRange := str(payload, "start_time")
	if end := str(payload, "end_time"); end != "" {
		timeRange += " - " + end
	}

	clientName := str(payload, "client_name")
	hotel := str(payload, "hotel")
	bookingID := fmt.Sprintf("%v", payload["booking_id"])

	switch template {
	case "booking_confirmed_client":
		if locale == "fr" {
			return renderedMessage{
				Subject: "Réservation confirmée",
				Body: fmt.Sprintf("Bonjour %s,\n\nVotre réservation du %s (%s) est confirmée.\nLieu : %s\n\nÀ très bientôt,\nCall a Nanny Care",
					clientName, date, timeRange, hotel),
			}
		}
		return renderedMessage{
			Subject: "Booking confirmed",
			Body: fmt.Sprintf("Hi %s,\n\nYour booking on %s (%s) is confirmed.\nLocation: %s\n\nSee you soon,\nCall a Nanny Care",
				clientName, date, timeRange, hotel),
		}

	case "booking_confirmed_nanny", "nanny_assigned":
		return renderedMessage{
			Subject: "New assignment: " + date,
			Body: fmt.Sprintf("You have been assigned a booking.\n\nClient: %s\nDate: %s\nTime: %s\nLocation: %s\nChildren: %v",
				clientName, date, timeRange, hotel, payload["children_count"]),
		}

	case "booking_confirmed_admin":
		return renderedMessage{
			Subject: fmt.Sprintf("Booking #%s confirmed", bookingID),
			Body: fmt.Sprintf("Booking #%s for %s on %s (%s) was confirmed.",
				bookingID, clientName, date, timeRange),
		}

	case "booking_confirmed_business":
		return renderedMessage{
			Subject: "Booking confirmed",
			Body:    fmt.Sprintf("Booking #%s confirmed: %s, %s (%s) at %s.", bookingID, clientName, date, timeRange, hotel),
		}

	case "nanny_profile":
		nannyName := str(payload, "nanny_name")
		if locale == "fr" {
			return renderedMessage{
				Subject: "Votre nounou : " + nannyName,
				Body: fmt.Sprintf("Bonjour %s,\n\n%s s'occupera de vos enfants le %s (%s).\n\nCall a Nanny Care",
					clientName, nannyName, date, timeRange),
			}
		}
		return renderedMessage{
			Subject: "Meet your nanny: " + nannyName,
			Body: fmt.Sprintf("Hi %s,\n\n%s will take care of your children on %s (%s).\n\nCall a Nanny Care",
				clientName, nannyName, date, timeRange),
		}

	case "booking_cancelled_client":
		feeLine := ""
		if fee, _ := payload["has_fee"].(bool); fee {
			if locale == "fr" {
				feeLine = "\nAnnulation à moins de 24h du début : des frais d'annulation s'appliquent."
			} else {
				feeLine = "\nCancelled within 24 hours of the start: a cancellation fee applies."
			}
		}
		if locale == "fr" {
			return renderedMessage{
				Subject: "Réservation annulée",
				Body:    fmt.Sprintf("Bonjour %s,\n\nVotre réservation du %s a été annulée.%s\n\nCall a Nanny Care", clientName, date, feeLine),
			}
		}
		return renderedMessage{
			Subject: "Booking cancelled",
			Body:    fmt.Sprintf("Hi %s,\n\nYour booking on %s has been cancelled.%s\n\nCall a Nanny Care", clientName, date, feeLine),
		}

	case "booking_cancelled_nanny":
		return renderedMessage{
			Subject: "Booking cancelled: " + date,
			Body:    fmt.Sprintf("The booking for %s on %s (%s) has been cancelled.", clientName, date, timeRange),
		}

	case "booking_cancelled_business":
		reason := str(payload, "reason")
		lines := []string{fmt.Sprintf("Booking #%s (%s, %s) was cancelled.", bookingID, clientName, date)}
		if reason != "" {
			lines = append(lines, "Reason: "+reason)
		}
		if fee, _ := payload["has_fee"].(bool); fee {
			lines = append(lines, "Late cancellation: fee applies.")
		}
		return renderedMessage{
			Subject: fmt.Sprintf("Booking #%s cancelled", bookingID),
			Body:    strings.Join(lines, "\n"),
		}

	case "invoice":
		hours := fmt.Sprintf("%v", payload["hours_worked"])
		total := str(payload, "total_price")
		if locale == "fr" {
			return renderedMessage{
				Subject: "Votre facture",
				Body: fmt.Sprintf("Bonjour %s,\n\nMerci d'avoir fait appel à nous le %s.\nHeures effectuées : %s\nTotal : %s EUR\n\nCall a Nanny Care",
					clientName, date, hours, total),
			}
		}
		return renderedMessage{
			Subject: "Your invoice",
			Body: fmt.Sprintf("Hi %s,\n\nThank you for booking with us on %s.\nHours worked: %s\nTotal: %s EUR\n\nCall a Nanny Care",
				clientName, date, hours, total),
		}

	case "invoice_sent_business":
		return renderedMessage{
			Subject: fmt.Sprintf("Invoice sent for booking #%s", bookingID),
			Body:    fmt.Sprintf("Invoice for booking #%s (%s) sent. Total: %s EUR.", bookingID, clientName, str(payload, "total_price")),
		}

	case "review_request":
		token := str(payload, "review_token")
		if locale == "fr" {
			return renderedMessage{
				Subject: "Votre avis compte",
				Body: fmt.Sprintf("Bonjour %s,\n\nComment s'est passée votre garde du %s ?\nLaissez votre avis : %s\n\nCall a Nanny Care",
					clientName, date, token),
			}
		}
		return renderedMessage{
			Subject: "How did we do?",
			Body: fmt.Sprintf("Hi %s,\n\nHow was your booking on %s?\nLeave a review: %s\n\nCall a Nanny Care",
				clientName, date, token),
		}

	case "booking_reminder_nanny":
		return renderedMessage{
			Subject: "Reminder: booking on " + date,
			Body: fmt.Sprintf("Reminder: you are booked for %s on %s (%s) at %s.",
				clientName, date, timeRange, hotel),
		}
	}

	// Unknown templates still go out rather than silently vanishing.
	return renderedMessage{
		Subject: template,
		Body:    fmt.Sprintf("%v", payload),
	}
}

func str(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}
