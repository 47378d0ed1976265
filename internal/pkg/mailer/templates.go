package mailer

import "fmt"

const (
	wrapperOpen = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">`
	footer      = `<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0;">
  <p style="font-size: 12px; color: #666;">This is an automated message, please do not reply to this email.</p>
</div></div>`
)

func registrationPendingBody(userName, eventName string) string {
	return wrapperOpen + fmt.Sprintf(`
<h2 style="color: #4F46E5;">Registration Received</h2>
<p>Hello %s,</p>
<p>Thank you for registering for <strong>%s</strong>. Your registration has been received and is currently pending approval.</p>
<p>We will notify you once your registration has been approved.</p>
<p>If you have any questions, please don't hesitate to contact us.</p>`, userName, eventName) + footer
}

func registrationApprovedBody(userName, eventName, eventDate, eventLocation, registrationID string, withQRCode bool) string {
	body := wrapperOpen + fmt.Sprintf(`
<h2 style="color: #4F46E5;">Registration Approved!</h2>
<p>Hello %s,</p>
<p>Great news! Your registration for <strong>%s</strong> has been approved.</p>
<div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0; color: #4F46E5;">Event Details</h3>
  <p><strong>Event:</strong> %s</p>
  <p><strong>Date:</strong> %s</p>
  <p><strong>Location:</strong> %s</p>
  <p><strong>Registration ID:</strong> %s</p>
</div>`, userName, eventName, eventName, eventDate, eventLocation, registrationID)

	if withQRCode {
		body += fmt.Sprintf(`
<div style="text-align: center; margin: 30px 0;">
  <h3 style="color: #4F46E5;">Your Entry Pass</h3>
  <p>Please present this QR code at the venue for entry:</p>
  <img src="cid:%s" alt="Entry QR Code" style="max-width: 200px; height: auto;" />
  <p style="font-size: 14px; color: #666; margin-top: 10px;">
    This QR code is your ticket to the event. Please keep it handy.
  </p>
</div>`, qrAttachmentName)
	}

	body += `
<p>We look forward to seeing you at the event!</p>
<p>If you have any questions, please don't hesitate to contact us.</p>` + footer

	return body
}

func registrationRejectedBody(userName, eventName, reason string) string {
	return wrapperOpen + fmt.Sprintf(`
<h2 style="color: #4F46E5;">Registration Status Update</h2>
<p>Hello %s,</p>
<p>We regret to inform you that your registration for <strong>%s</strong> could not be approved at this time.</p>
<p><strong>Reason:</strong> %s</p>
<p>If you have any questions or would like more information, please contact our support team.</p>`, userName, eventName, reason) + footer
}

func guruApprovedBody(userName, dashboardURL string) string {
	return wrapperOpen + fmt.Sprintf(`
<h2 style="color: #4F46E5;">Congratulations! You're Now a Zuper Guru</h2>
<p>Hello %s,</p>
<p>We're thrilled to inform you that your application to become a Zuper Guru has been <strong>approved</strong>!</p>
<div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0; color: #4F46E5;">What's Next?</h3>
  <ul style="padding-left: 20px;">
    <li>Your account has been upgraded to Guru status</li>
    <li>You now have access to the Guru Dashboard</li>
    <li>You can create and share success stories</li>
    <li>You'll be invited to exclusive networking events</li>
  </ul>
</div>
<p>We're excited to have you join our community of experts and look forward to your valuable contributions!</p>
<div style="margin-top: 20px;">
  <a href="%s" style="background-color: #4F46E5; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">
    Access Your Guru Dashboard
  </a>
</div>
<p style="margin-top: 20px;">If you have any questions, please don't hesitate to contact us.</p>`, userName, dashboardURL) + footer
}

func guruRejectedBody(userName, reason string) string {
	feedback := ""
	if reason != "" {
		feedback = fmt.Sprintf(`
<div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
  <h3 style="margin-top: 0; color: #4F46E5;">Feedback from our team:</h3>
  <p>%s</p>
</div>`, reason)
	}

	return wrapperOpen + fmt.Sprintf(`
<h2 style="color: #4F46E5;">Zuper Guru Application Update</h2>
<p>Hello %s,</p>
<p>Thank you for your interest in becoming a Zuper Guru. After careful review, we regret to inform you that we are unable to approve your application at this time.</p>%s
<p>We encourage you to apply again in the future as you gain more experience or if your circumstances change.</p>
<p>If you have any questions or would like more information, please don't hesitate to contact us.</p>`, userName, feedback) + footer
}
