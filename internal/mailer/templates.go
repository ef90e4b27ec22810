package mailer

import (
	"fmt"
	"html"
)

const (
	inviteSubject = "You've been invited to a legal workspace"
	resetSubject  = "Reset your password"
)

func inviteHTML(link string) string {
	l := html.EscapeString(link)
	return fmt.Sprintf(`
	<html>
		<body>
			<h1>You've been invited!</h1>
			<p>Hello,</p>
			<p>You have been invited to join a legal workspace.</p>
			<p><a href="%s">Accept invitation</a></p>
			<p>If the link doesn't work, copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This invitation will expire in 24 hours.</p>
		</body>
	</html>`, l, l)
}

func invitePlain(link string) string {
	return fmt.Sprintf(
		"Hello,\n\nYou have been invited to join a legal workspace.\n\n"+
			"Use the following link to accept: %s\n\n"+
			"This invitation will expire in 24 hours.\n", link)
}

func resetHTML(link string) string {
	l := html.EscapeString(link)
	return fmt.Sprintf(`
	<html>
		<body>
			<h1>Password reset</h1>
			<p>Hello,</p>
			<p>We received a request to reset your password.</p>
			<p><a href="%s">Reset password</a></p>
			<p>If the link doesn't work, copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>The link will expire in 15 minutes. If you did not request this, please ignore this email.</p>
		</body>
	</html>`, l, l)
}

func resetPlain(link string) string {
	return fmt.Sprintf(
		"Hello,\n\nWe received a request to reset your password.\n\n"+
			"Use the following link to choose a new one: %s\n\n"+
			"The link will expire in 15 minutes. If you did not request this, please ignore this email.\n", link)
}
