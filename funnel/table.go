package funnel

import (
	"context"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/funnelbot/core/telegram/keyboard"
)

// handlerFunc performs the side effects of one accepted token. It gets
// the token so shared handlers can branch on the concrete choice.
type handlerFunc func(ctx context.Context, userID int64, token string, msg Messenger) error

// transition couples a handler with the state entered after it
// succeeds. next StateIdle means the handler manages state itself.
type transition struct {
	next   State
	handle handlerFunc
}

func (m *Machine) buildTable() map[State]map[string]transition {
	return map[State]map[string]transition{
		StateCheckSubscription: {
			"start_flow":      {handle: m.handleStartFlow},
			"check_sub_again": {handle: m.handleRecheck},
		},
		StateQ1Sphere: {
			"q1_food":       {next: StateQ2Support, handle: m.handleQ1},
			"q1_money":      {next: StateQ2Support, handle: m.handleQ1},
			"q1_confidence": {next: StateQ2Support, handle: m.handleQ1},
			"q1_relations":  {next: StateQ2Support, handle: m.handleQ1},
			"q1_habits":     {next: StateQ2Support, handle: m.handleQ1},
		},
		StateQ2Support: {
			"q2_inside":  {next: StateQ3Attitude, handle: m.handleQ2},
			"q2_friends": {next: StateQ3Attitude, handle: m.handleQ2},
			"q2_pro":     {next: StateQ3Attitude, handle: m.handleQ2},
		},
		StateQ3Attitude: {
			"q3_now":     {next: StateIntensiveIntro, handle: m.handleQ3},
			"q3_think":   {next: StateIntensiveIntro, handle: m.handleQ3},
			"q3_unsure":  {next: StateIntensiveIntro, handle: m.handleQ3},
			"back_to_q2": {next: StateQ2Support, handle: m.handleBackToQ2},
		},
		StateIntensiveIntro: {
			"start_intensive": {next: StateDay1, handle: m.handleStartIntensive},
			"back_to_q3":      {next: StateQ3Attitude, handle: m.handleBackToQ3},
		},
		StateDay1: {
			"day1_done": {next: StateDay2, handle: m.handleDay1Done},
		},
		StateDay2: {
			"day2_done": {next: StateDay3, handle: m.handleDay2Done},
		},
		StateDay3: {
			"intensive_complete": {next: StateSalesMain, handle: m.handleIntensiveComplete},
		},
		StateSalesMain: {
			"sales_group":     {next: StateSalesGroupSelect, handle: m.handleSalesGroup},
			"sales_indiv":     {next: StateFinished, handle: m.handleSalesIndividual},
			"sales_questions": {next: StateFinished, handle: m.handleSalesQuestions},
		},
		StateSalesGroupSelect: {
			"topic_body":         {next: StateTopicDetail, handle: m.handleTopic},
			"topic_money":        {next: StateTopicDetail, handle: m.handleTopic},
			"topic_self":         {next: StateTopicDetail, handle: m.handleTopic},
			"topic_rel":          {next: StateTopicDetail, handle: m.handleTopic},
			"topic_habits":       {next: StateTopicDetail, handle: m.handleTopic},
			"back_to_sales_main": {next: StateSalesMain, handle: m.handleBackToSalesMain},
		},
		StateTopicDetail: {
			"final_yes": {next: StateFinished, handle: m.handleFinalChoice},
			"final_q":   {next: StateFinished, handle: m.handleFinalChoice},
		},
		StateFinished: {},
	}
}

// Subscription gate.

func (m *Machine) handleStartFlow(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Действие", "Нажал кнопку 'Пройти опрос'")
	member, err := m.membership.IsMember(ctx, userID)
	if err != nil || !member {
		return m.askToSubscribe(ctx, userID, msg)
	}
	return m.sendQ1(ctx, userID, msg)
}

func (m *Machine) handleRecheck(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Действие", "Нажал 'Начать диагностику' (проверка подписки)")
	member, err := m.membership.IsMember(ctx, userID)
	if err != nil {
		return msg.Alert(ctx, notSubscribedAlert)
	}
	if !member {
		if err := msg.Alert(ctx, notSubscribedAlert); err != nil {
			return err
		}
		return m.askToSubscribe(ctx, userID, msg)
	}
	if err := msg.Toast(ctx, subscribedToast); err != nil {
		return err
	}
	return m.sendQ1(ctx, userID, msg)
}

func (m *Machine) askToSubscribe(ctx context.Context, userID int64, msg Messenger) error {
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Подписаться", URL: m.channelURL},
		{Text: "Начать диагностику", Unique: "check_sub_again"},
	})
	if err := msg.Edit(ctx, subscribeText, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Попросил подписку")
	return nil
}

// sendQ1 opens the survey and advances past the gate.
func (m *Machine) sendQ1(ctx context.Context, userID int64, msg Messenger) error {
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: q1Labels["q1_food"], Unique: "q1_food"},
		{Text: q1Labels["q1_money"], Unique: "q1_money"},
		{Text: q1Labels["q1_confidence"], Unique: "q1_confidence"},
		{Text: q1Labels["q1_relations"], Unique: "q1_relations"},
		{Text: q1Labels["q1_habits"], Unique: "q1_habits"},
	})
	if err := msg.Edit(ctx, q1Text, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил вопрос 1 (Сфера)")
	m.sessions.SetState(userID, StateQ1Sphere)
	return nil
}

// Survey questions.

func (m *Machine) handleQ1(ctx context.Context, userID int64, token string, msg Messenger) error {
	m.logEvent(ctx, userID, "Выбор сферы", q1Readable[token])
	m.sessions.SetAnswer(userID, "q1", token)
	if err := msg.Edit(ctx, q2Prompt(token), q2Keyboard()); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил вопрос 2 (Поддержка)")
	return nil
}

func (m *Machine) handleQ2(ctx context.Context, userID int64, token string, msg Messenger) error {
	m.logEvent(ctx, userID, "Выбор поддержки", q2Readable[token])
	m.sessions.SetAnswer(userID, "q2", token)
	if err := msg.Edit(ctx, q3Prompt(token), q3Keyboard()); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил вопрос 3 (Отношение к группе)")
	return nil
}

func (m *Machine) handleQ3(ctx context.Context, userID int64, token string, msg Messenger) error {
	m.logEvent(ctx, userID, "Отношение к группе", q3Readable[token])
	m.sessions.SetAnswer(userID, "q3", token)
	text := q3LeadIn[token] + "\n\n" + intensiveOffer
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Начать интенсив", Unique: "start_intensive"},
		{Text: "⬅️ Назад", Unique: "back_to_q3"},
	})
	if err := msg.Edit(ctx, text, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Предложил интенсив")
	return nil
}

// Back navigation re-renders the previous prompt from the stored
// answer, so the text is identical to the first rendering.

func (m *Machine) handleBackToQ2(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Навигация", "Назад к вопросу 2")
	return msg.Edit(ctx, q2Prompt(m.sessions.Answer(userID, "q1")), q2Keyboard())
}

func (m *Machine) handleBackToQ3(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Навигация", "Назад к вопросу 3")
	return msg.Edit(ctx, q3Prompt(m.sessions.Answer(userID, "q2")), q3Keyboard())
}

func q2Prompt(q1Token string) string {
	return q1LeadIn[q1Token] + "\n\n" + q2Question
}

func q3Prompt(q2Token string) string {
	return q2LeadIn[q2Token] + "\n\n" + q3Question
}

func q2Keyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Держу в себе", Unique: "q2_inside"},
		{Text: "Стараюсь обсудить с близкими", Unique: "q2_friends"},
		{Text: "Обращаюсь к специалисту", Unique: "q2_pro"},
	})
}

func q3Keyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Хочу начать уже сейчас", Unique: "q3_now"},
		{Text: "Думаю, но пока откладываю", Unique: "q3_think"},
		{Text: "Интересно, но нет уверенности", Unique: "q3_unsure"},
		{Text: "⬅️ Назад", Unique: "back_to_q2"},
	})
}

// Mini-course days.

func (m *Machine) handleStartIntensive(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Интенсив", "Начал День 1")
	if err := msg.SendVideo(ctx, m.videos.Welcome, "Приветствие"); err != nil {
		return err
	}
	m.sleep(ctx)
	if err := msg.SendVideo(ctx, m.videos.Lesson1, "Урок 1"); err != nil {
		return err
	}
	m.sleep(ctx)
	if err := msg.Send(ctx, day1Text, nil); err != nil {
		return err
	}
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "Готово", Unique: "day1_done"}})
	if err := msg.Send(ctx, day1Prompt, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил материалы Дня 1")
	return nil
}

func (m *Machine) handleDay1Done(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Интенсив", "Выполнил День 1, перешел ко Дню 2")
	if err := msg.SendVideo(ctx, m.videos.Lesson2, "Урок 2"); err != nil {
		return err
	}
	if err := msg.Send(ctx, day2Text, nil); err != nil {
		return err
	}
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "Готово", Unique: "day2_done"}})
	if err := msg.Send(ctx, day2Prompt, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил материалы Дня 2")
	return nil
}

func (m *Machine) handleDay2Done(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Интенсив", "Выполнил День 2, перешел ко Дню 3")
	if err := msg.SendVideo(ctx, m.videos.Lesson3, "Урок 3"); err != nil {
		return err
	}
	if err := msg.Send(ctx, day3Text, nil); err != nil {
		return err
	}
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "Завершить интенсив", Unique: "intensive_complete"}})
	if err := msg.Send(ctx, day3Prompt, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил материалы Дня 3")
	return nil
}

// Sales.

func (m *Machine) handleIntensiveComplete(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Интенсив", "Полностью завершил интенсив")
	return m.sendSalesMain(ctx, userID, msg)
}

func (m *Machine) handleBackToSalesMain(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Навигация", "Назад к выбору формата")
	return m.sendSalesMain(ctx, userID, msg)
}

func (m *Machine) sendSalesMain(ctx context.Context, userID int64, msg Messenger) error {
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Да, хочу в группу", Unique: "sales_group"},
		{Text: "Хочу работать индивидуально", Unique: "sales_indiv"},
		{Text: "Есть вопросы", Unique: "sales_questions"},
	})
	if err := msg.Edit(ctx, salesMainText, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Предложил платные продукты")
	return nil
}

func (m *Machine) handleSalesGroup(ctx context.Context, userID int64, _ string, msg Messenger) error {
	m.logEvent(ctx, userID, "Выбор", "Хочет в группу, смотрит направления")
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Стройность", Unique: "topic_body"},
		{Text: "Финансы", Unique: "topic_money"},
		{Text: "Самооценка", Unique: "topic_self"},
		{Text: "Отношения", Unique: "topic_rel"},
		{Text: "Негативные привычки", Unique: "topic_habits"},
		{Text: "⬅️ Назад", Unique: "back_to_sales_main"},
	})
	return msg.Edit(ctx, salesGroupText, kb)
}

func (m *Machine) handleTopic(ctx context.Context, userID int64, token string, msg Messenger) error {
	m.logEvent(ctx, userID, "Интерес", "Выбрал тему: "+topicNames[token])
	kb := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Да, хочу в группу", Unique: "final_yes"},
		{Text: "Задать вопрос", Unique: "final_q"},
	})
	return msg.Edit(ctx, topicTexts[token], kb)
}

func (m *Machine) handleFinalChoice(ctx context.Context, userID int64, token string, msg Messenger) error {
	text, content := finalYesText, "Нажал: Хочу в группу"
	if token == "final_q" {
		text, content = finalQuestionText, "Нажал: Задать вопрос"
	}
	return m.finish(ctx, userID, msg, text, "Финал", content)
}

func (m *Machine) handleSalesIndividual(ctx context.Context, userID int64, _ string, msg Messenger) error {
	return m.finish(ctx, userID, msg, individualText, "Интерес", "Индивидуальная работа")
}

func (m *Machine) handleSalesQuestions(ctx context.Context, userID int64, _ string, msg Messenger) error {
	return m.finish(ctx, userID, msg, questionsText, "Интерес", "Есть вопросы")
}

// finish marks completion, shows the closing message and hands the
// user off to the reporter via the OnFinished hook.
func (m *Machine) finish(ctx context.Context, userID int64, msg Messenger, text, eventType, content string) error {
	if err := m.users.MarkFinished(ctx, userID); err != nil {
		return err
	}
	m.logEvent(ctx, userID, eventType, content)
	if err := msg.Edit(ctx, text, nil); err != nil {
		return err
	}
	if m.onFinished != nil {
		m.onFinished(ctx, userID)
	}
	return nil
}
