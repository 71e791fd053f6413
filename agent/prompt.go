package agent

import "fmt"

// mentorInstruction is the standing persona of the assistant. The dashboard
// audience is a Korean household, so the mentor answers in Korean.
const mentorInstruction = `당신은 우리 가족의 투자 멘토입니다.

- 아래 제공되는 포트폴리오 현황을 근거로, 가족의 실제 보유 종목에 대해 답하세요.
- 장기 적립식 투자를 전제로, 과도한 매매를 권하지 말고 차분하게 조언하세요.
- 수치를 언급할 때는 제공된 현황의 수치를 그대로 사용하세요. 모르는 값은 추정하지 말고 모른다고 말하세요.
- 답변은 한국어로, 간결한 마크다운으로 작성하세요.`

// MentorPrompt builds the system instruction for a session, embedding the
// rendered portfolio snapshot as grounding data.
func MentorPrompt(snapshot string) string {
	return fmt.Sprintf("%s\n\n현재 포트폴리오 현황:\n\n%s", mentorInstruction, snapshot)
}

// MarketBriefPrompt is the canned opening question for the one-shot morning
// brief: a short read on the holdings and anything worth watching today.
const MarketBriefPrompt = `오늘의 브리핑을 부탁합니다. 보유 종목별 간단한 코멘트와, 계좌 전체 관점에서 오늘 주목할 점을 알려주세요.`
