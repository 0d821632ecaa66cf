package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/slack-go/slack"
)

// DecodeSlashCommand parses an application/x-www-form-urlencoded body into a
// slash command. Missing fields stay empty, unknown fields are ignored and a
// field with a broken percent escape decodes as empty. Only a body that is not
// UTF-8 text is an error.
func DecodeSlashCommand(body []byte) (*slack.SlashCommand, error) {
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrPayloadDecode)
	}
	values := parseForm(string(body))

	isEnterpriseInstall, _ := strconv.ParseBool(values.Get("is_enterprise_install"))

	return &slack.SlashCommand{
		Token:               values.Get("token"),
		TeamID:              values.Get("team_id"),
		TeamDomain:          values.Get("team_domain"),
		EnterpriseID:        values.Get("enterprise_id"),
		EnterpriseName:      values.Get("enterprise_name"),
		IsEnterpriseInstall: isEnterpriseInstall,
		ChannelID:           values.Get("channel_id"),
		ChannelName:         values.Get("channel_name"),
		UserID:              values.Get("user_id"),
		UserName:            values.Get("user_name"),
		Command:             values.Get("command"),
		Text:                values.Get("text"),
		ResponseURL:         values.Get("response_url"),
		TriggerID:           values.Get("trigger_id"),
		APIAppID:            values.Get("api_app_id"),
	}, nil
}

// parseForm splits on '&' only, so ';' stays part of a value. A pair whose key
// cannot be unescaped is dropped; a pair whose value cannot be unescaped keeps
// its key with an empty value.
func parseForm(body string) url.Values {
	values := url.Values{}
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			value = ""
		}
		values.Add(key, strings.ToValidUTF8(value, "\uFFFD"))
	}
	return values
}
