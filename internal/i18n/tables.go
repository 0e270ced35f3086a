package i18n

// tables holds the static translation tables, one per supported locale.
// Keys are dot-scoped by screen.
var tables = map[Locale]map[string]string{
	LocaleEN: {
		"app.name":          "DS Detective",
		"home.title":        "Precinct",
		"home.case":         "Case",
		"home.locked":       "Locked",
		"home.solved":       "Solved",
		"home.rank":         "Rank",
		"home.guide":        "Field Guide",
		"home.language":     "Language",
		"home.reset":        "Reset progress",
		"home.resetConfirm": "Erase all progress? (y/n)",
		"case.brief":        "Case Brief",
		"case.symptoms":     "Reported symptoms",
		"case.objective":    "Your objective",
		"case.diagram":      "System Diagram",
		"case.inspect":      "Inspect",
		"case.rootCause":    "Identify the root cause",
		"case.fix":          "Prescribe the fix",
		"case.correct":      "Correct!",
		"case.incorrect":    "Not quite.",
		"case.solved":       "Case closed!",
		"case.badgeEarned":  "Badge earned",
		"case.concept":      "Read the concept",
		"case.notFound":     "Case file not found.",
		"case.next":         "Next case",
		"case.pressEnter":   "Press Enter to continue",
		"concept.keyTerms":  "Key terms",
		"guide.title":       "Field Guide",
		"guide.p1":          "Each case file opens with a brief: what broke, what users are seeing, and what you need to find out.",
		"guide.p2":          "Investigate the system diagram. Move between components with the arrow keys and read their inspection panels for clues.",
		"guide.p3":          "When you are ready, name the root cause, then prescribe the fix. Wrong answers cost nothing but pride; attempts are counted.",
		"guide.p4":          "Closing a case earns a badge and unlocks the next one. Climb the ranks from Rookie all the way to Chief.",
	},
	LocalePTBR: {
		"app.name":          "DS Detective",
		"home.title":        "Delegacia",
		"home.case":         "Caso",
		"home.locked":       "Bloqueado",
		"home.solved":       "Resolvido",
		"home.rank":         "Patente",
		"home.guide":        "Guia de Campo",
		"home.language":     "Idioma",
		"home.reset":        "Zerar progresso",
		"home.resetConfirm": "Apagar todo o progresso? (y/n)",
		"case.brief":        "Resumo do Caso",
		"case.symptoms":     "Sintomas relatados",
		"case.objective":    "Seu objetivo",
		"case.diagram":      "Diagrama do Sistema",
		"case.inspect":      "Inspecionar",
		"case.rootCause":    "Identifique a causa raiz",
		"case.fix":          "Prescreva a correção",
		"case.correct":      "Correto!",
		"case.incorrect":    "Ainda não.",
		"case.solved":       "Caso encerrado!",
		"case.badgeEarned":  "Distintivo conquistado",
		"case.concept":      "Ler o conceito",
		"case.notFound":     "Arquivo do caso não encontrado.",
		"case.next":         "Próximo caso",
		"case.pressEnter":   "Pressione Enter para continuar",
		"concept.keyTerms":  "Termos-chave",
		"guide.title":       "Guia de Campo",
		"guide.p1":          "Cada caso começa com um resumo: o que quebrou, o que os usuários estão vendo e o que você precisa descobrir.",
		"guide.p2":          "Investigue o diagrama do sistema. Navegue entre os componentes com as setas e leia os painéis de inspeção em busca de pistas.",
		"guide.p3":          "Quando estiver pronto, aponte a causa raiz e depois prescreva a correção. Errar não custa nada além do orgulho; as tentativas são contadas.",
		"guide.p4":          "Encerrar um caso rende um distintivo e desbloqueia o próximo. Suba de patente, de Novato até Chefe.",
	},
}
