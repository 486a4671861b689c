// Package mailer delivers generated drafts to a real inbox so users can see
// how an email renders in their own client before exporting it.
//
// Two senders implement the Sender interface: a Postmark-backed client for
// production and a DevSender that writes the HTML and metadata to disk for
// local development, where outbound email is disabled.
//
// Usage:
//
//	sender, err := mailer.NewPostmark(cfg)
//	if err != nil {
//		return err
//	}
//
//	err = sender.Send(ctx, mailer.SendParams{
//		To:       "user@example.com",
//		Subject:  email.SubjectLine,
//		HTMLBody: export.AsHTML(email),
//		Tag:      "test-send",
//	})
package mailer
