package handlers

import (
	"fmt"

	"github.com/golang/mock/gomock"

	"github.com/sbilibin2017/zar-bot/internal/models"
)

type intentMatcher struct {
	want models.Intent
}

func (m intentMatcher) Matches(x interface{}) bool {
	got, ok := x.(models.Intent)
	return ok && m.want.Equal(got)
}

func (m intentMatcher) String() string {
	return fmt.Sprintf("is intent %+v", m.want)
}

func eqIntent(want models.Intent) gomock.Matcher {
	return intentMatcher{want: want}
}
