// Package message turns message records into delivered text.
//
// A Record holds the templates of one message (chat body, title and
// subtitle) together with its delivery settings. Records come from a
// Repository: MapRepository for records built in code, ParseYAML for one
// message file, or a Catalog loaded from one directory per language.
//
// # Pipeline
//
// Pipeline.Send handles one delivery. It looks the record up, drops it when
// disabled or when the recipient is still cooling, substitutes placeholders
// with a Processor, runs every Sender in order and finally starts the
// cooldown window:
//
//	p, err := message.NewPipeline(repo, message.NewProcessor(replacer),
//		message.WithSenders(message.ChatSender{}, message.TitleSender{}),
//		message.WithCooldowns(cooldowns),
//	)
//
//	outcome := p.Send(ctx, player, message.MustRecordKey("WELCOME"), objects)
//
// Nothing in Send returns an error. Missing records, failing senders and
// store errors are logged; the Outcome says whether the message went out.
//
// Templates can always reference {RECIPIENT} and, when the repository
// implements ConstantProvider, its constants. Objects passed by the caller
// take precedence over both.
//
// # Senders
//
// ChatSender writes the body line by line to ChatReceiver recipients and
// TitleSender shows the title to TitleReceiver recipients. LogSender writes
// messages for recipients without chat, such as the console, to a logger.
// SenderFunc adapts a function. Senders ignore recipients they cannot reach.
package message
