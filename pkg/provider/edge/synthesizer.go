// Package edge synthesizes speech using the public Edge read-aloud websocket
// endpoint. Every call dials its own connection, so concurrent requests never
// share connection state.
package edge

import (
	"bytes"
	"context"
	"encoding/binary"
	"strings"
	"time"

	"github.com/adrianliechti/voicegate/pkg/fault"
	"github.com/adrianliechti/voicegate/pkg/provider"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const (
	DefaultVoice = "en-US-JennyNeural"

	endpoint    = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1"
	clientToken = "6A5AA1D4EAFF4E9FB37E23D68491D6F4"

	outputFormat = "audio-24khz-48kbitrate-mono-mp3"
)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:    endpoint,
		dialer: websocket.DefaultDialer,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := options.Voice

	if voice == "" {
		voice = DefaultVoice
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	conn, resp, err := s.dialer.DialContext(ctx, s.requestURL(id), nil)

	if err != nil {
		return nil, fault.Upstream("speech service unreachable: "+err.Error(), err)
	}

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
		conn.SetWriteDeadline(deadline)
	}

	if err := conn.WriteMessage(websocket.TextMessage, configMessage()); err != nil {
		return nil, fault.Upstream("speech service rejected configuration: "+err.Error(), err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, ssmlMessage(id, voice, content)); err != nil {
		return nil, fault.Upstream("speech service rejected request: "+err.Error(), err)
	}

	var audio bytes.Buffer

	for {
		kind, data, err := conn.ReadMessage()

		if err != nil {
			return nil, fault.Upstream("speech generation failed: "+err.Error(), err)
		}

		switch kind {
		case websocket.TextMessage:
			if strings.Contains(string(data), "Path:turn.end") {
				return &provider.Synthesis{
					ID:    id,
					Model: voice,

					Content:     audio.Bytes(),
					ContentType: "audio/mpeg",
				}, nil
			}

		case websocket.BinaryMessage:
			audio.Write(audioPayload(data))
		}
	}
}

func (s *Synthesizer) requestURL(id string) string {
	return s.url + "?TrustedClientToken=" + clientToken + "&ConnectionId=" + id
}

func configMessage() []byte {
	var message bytes.Buffer

	message.WriteString("X-Timestamp:" + timestamp() + "\r\n")
	message.WriteString("Content-Type:application/json; charset=utf-8\r\n")
	message.WriteString("Path:speech.config\r\n")
	message.WriteString("\r\n")
	message.WriteString(`{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},"outputFormat":"` + outputFormat + `"}}}}`)

	return message.Bytes()
}

func ssmlMessage(id, voice, text string) []byte {
	var message bytes.Buffer

	message.WriteString("X-RequestId:" + id + "\r\n")
	message.WriteString("X-Timestamp:" + timestamp() + "\r\n")
	message.WriteString("Content-Type:application/ssml+xml\r\n")
	message.WriteString("Path:ssml\r\n")
	message.WriteString("\r\n")
	message.WriteString("<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>")
	message.WriteString("<voice name='" + voice + "'>" + escapeText(text) + "</voice>")
	message.WriteString("</speak>")

	return message.Bytes()
}

// audioPayload strips the length-prefixed header from a binary frame and
// returns the audio bytes, or nil for non-audio frames.
func audioPayload(frame []byte) []byte {
	if len(frame) < 2 {
		return nil
	}

	n := int(binary.BigEndian.Uint16(frame[:2]))

	if len(frame) < 2+n {
		return nil
	}

	header := string(frame[2 : 2+n])

	if !strings.Contains(header, "Path:audio") {
		return nil
	}

	return frame[2+n:]
}

func escapeText(text string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	).Replace(text)
}

func timestamp() string {
	return time.Now().UTC().Format("Mon Jan 02 2006 15:04:05 GMT+0000 (Coordinated Universal Time)")
}
