package funnel

// All user-facing copy of the funnel. Keyed maps are indexed by the
// answer token of the preceding question.

const greetingText = "Здравствуйте! Если вы здесь, значит хотите перемен – разобраться в себе, чувствах или привычках.\n" +
	"Ответьте на несколько вопросов и я подскажу, какой путь подойдёт именно вам и открою доступ к " +
	"3-х дневному мини-интенсиву, который поможет почувствовать первые изменения."

const subscribeText = "Чтобы я могла вам помочь, сначала подпишитесь на мой ТГ канал, " +
	"там вы найдёте много полезной информации."

const (
	notSubscribedAlert = "Вы еще не подписались!"
	subscribedToast    = "Спасибо за подписку!"
)

const q1Text = "С какой сферой сейчас труднее всего справляться?"

var q1Labels = map[string]string{
	"q1_food":       "С отношением к еде и телу",
	"q1_money":      "С деньгами и ощущением стабильности",
	"q1_confidence": "С уверенностью в себе",
	"q1_relations":  "С отношениями с близкими",
	"q1_habits":     "С привычками от которых сложно отказаться",
}

var q1Readable = map[string]string{
	"q1_food":       "Еда и тело",
	"q1_money":      "Деньги",
	"q1_confidence": "Уверенность",
	"q1_relations":  "Отношения",
	"q1_habits":     "Привычки",
}

var q1LeadIn = map[string]string{
	"q1_food":       "Это частая трудность. В программе можно научиться справляться с перееданием и критикой к себе.",
	"q1_money":      "Деньги связаны не только с цифрами, но и с эмоциями. В программе о финансовой устойчивости мы работаем как раз с этим.",
	"q1_confidence": "Уверенность можно укрепить - в группе проще увидеть свои сильные стороны.",
	"q1_relations":  "В терапии часто оказывается, что трудности в отношениях решаемы, если понимать свои эмоции и реакции.",
	"q1_habits":     "Справляться с привычками одному сложно, а в группе появляется поддержка и конкретные шаги.",
}

const q2Question = "Когда вам становится тяжело, вы обычно ищете поддержку?"

var q2Readable = map[string]string{
	"q2_inside":  "Держу в себе",
	"q2_friends": "С близкими",
	"q2_pro":     "К специалисту",
}

var q2LeadIn = map[string]string{
	"q2_inside":  "Это выматывает. В терапии не нужно тащить всё в одиночку.",
	"q2_friends": "Это ценно, но они не всегда могут дать именно то, что поможет. Группа - безопасное пространство, где поддержка идет вместе с профессиональными инструментами.",
	"q2_pro":     "Отлично, значит вы уже заботитесь о себе. Групповой формат может стать дополнением и ускорить изменения.",
}

const q3Question = "Как вы относитесь к идее пройти терапевтическую группу?"

var q3Readable = map[string]string{
	"q3_now":    "Хочу сейчас",
	"q3_think":  "Думаю",
	"q3_unsure": "Нет уверенности",
}

var q3LeadIn = map[string]string{
	"q3_now":    "Это сильный шаг. Я расскажу какая из программ подойдёт вам: стройность, финансы, самооценка, отношения или работа с зависимостями.",
	"q3_think":  "Это естественно. Но как раз в группе проще не откладывать, потому что есть поддержка и конкретный план.",
	"q3_unsure": "Можно начать с небольшой группы. Это безопасный способ попробовать терапию и увидеть первые результаты.",
}

const intensiveOffer = "Каждый ваш ответ - это про заботу о себе. Я предлагаю вам пройти небольшой бесплатный 3-х дневный интенсив, " +
	"в котором вас ждут три коротких видео урока (по 20-30 мин) и простые практические задания, которые помогут:\n" +
	"- понять что именно мешает вам двигаться вперед\n" +
	"- научиться управлять внутренним саботажем и эмоциями\n" +
	"- сделать первый шаг к устойчивым изменениям"

const day1Text = "Меня зовут Анастасия Кащеева – я психотерапевт, когнитивно-поведенческий терапевт и автор проектов о том, как вернуть себе опору, ясность и устойчивость в жизни.\n\n" +
	"Добро пожаловать на бесплатный интенсив \"пять ключей к изменениям\".\n" +
	"В течение нескольких дней мы разберём, почему даже сильные и умные люди часто застревают в теле, в отношениях, с деньгами, с привычками или самооценкой – и что с этим можно сделать.\n\n" +
	"После интенсива вы увидите, в какой сфере сейчас ваша главная точка роста - И сможете выбрать подходящую группу для продолжения работы.\n\n" +
	"Урок 1 (видео)\n" +
	"Почему мы знаем что делать – но не делаем: как работает внутренний саботаж\n\n" +
	"Я покажу вам, что причина не в слабой воле или лени, а в автоматических мыслях, страхи неудачи и неосознанных установках. Здесь работает простая схема КПТ: мысль-> эмоция-> поведение.\n\n" +
	"Типичные формы самосаботажа: откладывание, переедание, избегание, раздражение, всё или ничего.\n\n" +
	"Задание на самонаблюдение - поймать момент саботажа.\n" +
	"Это затрагивает всех: и тех кто не может начать худеть, и тех кто застрял в отношениях, с деньгами или самооценкой.\n\n" +
	"В течение дня замечаете ситуацию, где вы хотели сделать что-то полезное (например, заняться спортом, поговорить спокойно, не переесть, не тратить лишнего) но не смогли.\n\n" +
	"Запишите три пункта:\n" +
	"- что я собирался(лась) сделать?\n" +
	"- какая мысль мелькнула в голове перед тем, как я передумал(а)?\n" +
	"- какое чувство появилось?\n\n" +
	"Коротко проанализируйте помогла ли вам эта мысль приблизиться к цели или отдалила?\n\n" +
	"Цель: увидеть, что саботаж – не лень, а автоматическая мысль, которую можно заметить и поменять."

const day1Prompt = "Нажмите Готово после того, как выполните задание."

const day2Text = "Урок 2 (видео)\n\n" +
	"Эмоции под контролем: как перестать жить на автопилоте.\n\n" +
	"Покажу вам, что эмоции не враги, а сигналы, которые можно научиться понимать и использовать.\n\n" +
	"Научу различать автоматическую эмоцию и её причину.\n\n" +
	"Почему избегание чувств усиливает тревогу, переедания и конфликты.\n\n" +
	"Эта тема универсальная для всех направлений потому что эмоции – главные триггеры поведения.\n\n" +
	"Задание Стоп-кадр:\n" +
	"В течение второго дня, когда почувствуете сильную эмоцию (тревога, раздражение, обида) - остановитесь на 30 секунд.\n\n" +
	"Ответьте письменно:\n" +
	"- что я сейчас чувствую (одним словом)?\n" +
	"- что произошло перед этим?\n" +
	"- о чем говорит эта эмоция, чего я хочу или чего мне не хватает?\n\n" +
	"Сделайте глубокий вдох-выдох и выберите одно маленькое действие, которое поможет вам удовлетворить эту потребность экологично.\n\n" +
	"Цель: научиться распознавать эмоцию до того, как она направит поведение."

const day2Prompt = "Нажмите Готово после того, как выполните задание и смотрите завершающий урок интенсива"

const day3Text = "Поздравляю вас, сегодня завершающий день мини интенсива.\n\n" +
	"Урок 3 (видео)\n\n" +
	"Как строятся устойчивые изменения: шаги, которые работают.\n\n" +
	"Сегодня будем учиться переводить себя из позиции \"я опять не справлюсь\" в состояние \"я понимаю как работает процесс изменений\".\n\n" +
	"Узнаем, как мозг реагирует на новое и почему быстро откатывает обратно.\n\n" +
	"Задание: одно действие на сегодня.\n\n" +
	"Выберите одну сферу, где вы давно хотите изменений (тело, отношения, финансы, привычки или самооценка).\n\n" +
	"Запишите одно маленькое действие, которое реально сделать за 5-10 минут и которое немного приблизить вас к цели.\n\n" +
	"Например: выпить стакан воды вместо кофе, написать сообщение, записать расходы, выйти на короткую прогулку, похвалить себя.\n\n" +
	"Вечером отметьте, удалось ли сделать. Если да – замечайте чувство удовлетворения, если нет – мягко проанализируйте, что помешало.\n\n" +
	"Цель: почувствовать, что изменения начинаются не с мотивации, а с маленьких, осознанных действий."

const day3Prompt = "Нажмите Завершить после того, как выполните задание."

const salesMainText = "Вы сделали первый шаг к решению вашей проблемы. Сейчас я веду набор в групповые программы по 5 направлениям: " +
	"стройность, финансы, самооценка, отношения и зависимости.\n" +
	"Хотите расскажу подробнее о той, которая подходит именно вам?"

const salesGroupText = "Здорово! У меня есть несколько направлений терапевтических групп:\n" +
	"- Стройность через КПТ-для тех, кто хочет наладить отношения с едой и телом\n" +
	"- Финансовая устойчивость-про деньги и уверенность в себе\n" +
	"- Самооценка и уверенность-чтобы чувствовать больше опоры в себе\n" +
	"- Отношения-про близость, доверие и здоровые границы\n" +
	"- Работа с зависимостями-для тех, кто устал жить \"по кругу\"\n\n" +
	"Выберите какая тема ближе вам сейчас и я расскажу подробнее о ближайшем наборе."

var topicNames = map[string]string{
	"topic_body":   "Стройность",
	"topic_money":  "Финансы",
	"topic_self":   "Самооценка",
	"topic_rel":    "Отношения",
	"topic_habits": "Негативные привычки",
}

var topicTexts = map[string]string{
	"topic_body": "Эта группа для тех, кто устал от диет, срывов и чувство вины. Мы работаем не с весами, а с привычками, мыслями и эмоциями.\n" +
		"Вы научитесь понимать сигналы тела, справляться с перееданием и строить новые отношения с едой без жёстких ограничений.\n" +
		"Хотите присоединиться к ближайшей группе?",
	"topic_money": "Финансовые трудности часто связаны не только с цифрами, но и с нашими мыслями, страхами и привычками. " +
		"В группе мы работаем с тревогой о деньгах, откладыванием, с причинами Долгов и с внутренними запретами на доход. " +
		"Это шаг к спокойствию и большой уверенности в завтрашнем дне. Хотите я расскажу о ближайшем наборе?",
	"topic_self": "Если вы часто сомневаетесь в себе, откладывайте из-за страха ошибки или живёте с внутренним критиком – эта группа поможет.\n" +
		"Вы будете учиться замечать свои сильные стороны, справляться с самокритикой и шага за шагом укреплять уверенность.",
	"topic_rel": "Близкие отношения это источник поддержки, но часто и боли. В группе мы работаем с доверием, умением строить здоровые границы, " +
		"понимать свои чувства и не терять себя в отношениях.\n" +
		"Это пространство, где можно увидеть привычные сценарии и начать строить новые, более здоровые.\n" +
		"Хотите узнать о ближайшей группе?",
	"topic_habits": "Иногда привычки становится слишком сильными и начинают управлять нами – это могут быть еда, гаджеты, алкоголь или другие формы зависимости. " +
		"В группе мы разбираем как устроены такие механизмы и учимся шаг за шагом возвращать себе контроль. Хотите присоединиться к ближайшей группе?",
}

const finalYesText = "Если вы чувствуете, что формат группы вам подходит – можно занять место прямо сейчас. Напишите мне и я пришлю все детали: @doctorkashcheeva"

const finalQuestionText = "Если у вас есть вопрос, напишите мне: @doctorkashcheeva"

const individualText = "Индивидуальная работа – это безопасное пространство, где все внимание уделяется только вам.\n\n" +
	"На сессиях мы разбираем именно ваш запрос и шаг за шагом идём к изменениям. " +
	"Индивидуальные консультации проходят онлайн и очно (в центре Москвы).\n" +
	"Длительность консультации 50 минут. Рекомендуемая частота – обычно один раз в неделю. " +
	"В среднем от 8 до 20 встреч уже достаточно чтобы почувствовать результат. " +
	"Хотите я помогу подобрать удобное время для первой консультации?\n\n" +
	"Чтобы согласовать удобное время и условия индивидуальной работы с вами, а также уточнить условия – напишите мне:\n" +
	"@doctorkashcheeva"

const questionsText = "Сомневаться и уточнять нормально. Можете просто написать мне, чтобы задать вопрос или обсудить, " +
	"какой формат ближе именно вам:\n" +
	"@doctorkashcheeva"
