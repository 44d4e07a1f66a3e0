package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"
	"time"

	"kenyastay/internal/domain"
)

type templateData struct {
	domain.ConfirmationDetails
	TotalFmt string
	Year     int
}

func render(d domain.ConfirmationDetails) (Delivery, error) {
	data := templateData{
		ConfirmationDetails: d,
		TotalFmt:            groupThousands(d.Total),
		Year:                time.Now().Year(),
	}

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return Delivery{}, fmt.Errorf("render html body: %w", err)
	}
	var text bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return Delivery{}, fmt.Errorf("render text body: %w", err)
	}

	return Delivery{
		To:      d.Email,
		Subject: "Booking Confirmed: " + d.HotelName,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// groupThousands formats n with comma separators (36000 -> "36,000").
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var b bytes.Buffer
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

var htmlTmpl = htmltemplate.Must(htmltemplate.New("confirmation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #006600; color: white; padding: 25px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 28px;">KenyaStay Booking Confirmation</h1>
    <p style="margin: 10px 0 0; font-size: 18px;">Karibu Kenya!</p>
  </div>

  <div style="padding: 30px; background: #f9f9f9; border-radius: 0 0 10px 10px;">
    <h2 style="color: #006600; margin-top: 0;">Hello {{.GuestName}}!</h2>
    <p style="font-size: 16px; color: #333;">Thank you for booking with KenyaStay. Your reservation has been confirmed.</p>

    <div style="background: white; padding: 25px; border-radius: 8px; margin: 25px 0; border: 2px solid #006600;">
      <h3 style="color: #006600; margin-top: 0;">{{.HotelName}}</h3>

      <p style="margin: 8px 0;"><strong>Location:</strong> {{.Location}}</p>
      <p style="margin: 8px 0;"><strong>Check-in:</strong> {{.CheckIn}}</p>
      <p style="margin: 8px 0;"><strong>Check-out:</strong> {{.CheckOut}}</p>
      <p style="margin: 8px 0;"><strong>Guests:</strong> {{.Guests}} {{if eq .Guests 1}}guest{{else}}guests{{end}}</p>

      <div style="background: #e6f7ff; padding: 15px; border-radius: 6px; margin: 15px 0; border-left: 4px solid #006600;">
        <p style="margin: 5px 0;"><strong>Total Amount:</strong> KES {{.TotalFmt}}</p>
        <p style="margin: 5px 0;"><strong>Booking Reference:</strong> {{.Reference}}</p>
      </div>

      <p style="font-size: 14px; color: #666; margin-top: 20px;">
        <em>Please present this reference at check-in. Keep this email for your records.</em>
      </p>
    </div>

    <div style="background: #e6f7ff; padding: 20px; border-radius: 8px; margin: 25px 0; border: 1px solid #b3e0ff;">
      <h4 style="color: #004d99; margin-top: 0;">What to Expect</h4>
      <ul style="color: #333;">
        <li>Check-in time: 2:00 PM</li>
        <li>Check-out time: 11:00 AM</li>
        <li>Free cancellation until 48 hours before check-in</li>
        <li>Contact hotel directly for special requests</li>
      </ul>
    </div>

    <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd;">
      <h4 style="color: #333;">Need Help?</h4>
      <p style="color: #666;">
        KenyaStay Customer Support<br>
        support@kenyastay.co.ke<br>
        +254 700 000 000<br>
        Mon-Fri: 8AM-6PM EAT
      </p>
    </div>

    <div style="margin-top: 30px; text-align: center; color: #999; font-size: 12px; padding-top: 20px; border-top: 1px solid #eee;">
      <p>&copy; {{.Year}} KenyaStay. All rights reserved.</p>
      <p>Thank you for choosing authentic Kenyan hospitality!</p>
    </div>
  </div>
</div>
`))

var textTmpl = texttemplate.Must(texttemplate.New("confirmation").Parse(`KENYASTAY BOOKING CONFIRMATION
===============================

Hello {{.GuestName}}!

Your booking at {{.HotelName}} has been confirmed.

DETAILS:
- Hotel: {{.HotelName}}
- Location: {{.Location}}
- Check-in: {{.CheckIn}}
- Check-out: {{.CheckOut}}
- Guests: {{.Guests}}
- Total: KES {{.TotalFmt}}
- Reference: {{.Reference}}

Check-in time: 2:00 PM
Check-out time: 11:00 AM

For questions or changes:
support@kenyastay.co.ke
+254 700 000 000

Thank you for choosing KenyaStay!
Karibu Kenya!
`))
