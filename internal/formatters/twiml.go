package formatters

import "encoding/xml"

// ContentTypeXML is the content type of a TwiML reply.
const ContentTypeXML = "text/xml; charset=utf-8"

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// TwiML wraps text in a messaging-webhook reply envelope.
func TwiML(text string) ([]byte, error) {
	body, err := xml.Marshal(twimlResponse{Message: text})
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
