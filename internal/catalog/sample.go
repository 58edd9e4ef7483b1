package catalog

// sampleDeckJSON is the baked-in deck served when no data source is
// configured, mirroring the shape of data/cards.json.
var sampleDeckJSON = []byte(`[
  {
    "slug": "Vocab:A1:Cat",
    "type": "Vocabulary",
    "name": "Cat",
    "img": "/assets/cards/vocab-cat.webp",
    "desc": "A small animal that is often kept as a pet.",
    "pronounce": "/kæt/",
    "meaning": "Con mèo",
    "example": "The cat is sleeping on the sofa.",
    "level": "A1"
  },
  {
    "slug": "Vocab:A2:Bridge",
    "type": "Vocabulary",
    "name": "Bridge",
    "img": "/assets/cards/vocab-bridge.webp",
    "desc": "A structure built over a river or road so people can cross.",
    "pronounce": "/brɪdʒ/",
    "audio": "/assets/audio/bridge.mp3",
    "meaning": "Cây cầu",
    "example": "We walked across the old stone bridge.",
    "level": "A2"
  },
  {
    "slug": "Vocab:B1:Curious",
    "type": "Vocabulary",
    "name": "Curious",
    "img": "/assets/cards/vocab-curious.webp",
    "desc": "Wanting to know or learn about something.",
    "pronounce": "/ˈkjʊə.ri.əs/",
    "meaning": "Tò mò",
    "example": "She was curious about the locked door.",
    "level": "B1"
  },
  {
    "slug": "Idiom:PieceOfCake",
    "type": "Idioms",
    "name": "A piece of cake",
    "img": "/assets/cards/idiom-piece-of-cake.webp",
    "desc": "Used when a task is very easy.",
    "meaning": "Dễ như ăn bánh",
    "example": "The test was a piece of cake."
  },
  {
    "slug": "Idiom:BreakTheIce",
    "type": "Idioms",
    "name": "Break the ice",
    "img": "/assets/cards/idiom-break-the-ice.webp",
    "desc": "To make people feel relaxed in a new situation.",
    "meaning": "Phá vỡ sự ngại ngùng",
    "example": "He told a joke to break the ice."
  },
  {
    "slug": "Dare:SingChorus",
    "type": "Dare",
    "name": "Sing it out",
    "img": "/assets/cards/dare-sing.webp",
    "desc": "A challenge card for the whole table.",
    "detail": "Sing the chorus of an English song of your choice.",
    "hint": "Nursery rhymes count."
  },
  {
    "slug": "Func:SkipTurn",
    "type": "Function",
    "name": "Skip turn",
    "img": "/assets/cards/func-skip.webp",
    "desc": "A game-function card.",
    "detail": "The next player loses their turn."
  },
  {
    "slug": "Func:SwapHands",
    "type": "Function",
    "name": "Swap hands",
    "img": "/assets/cards/func-swap.webp",
    "desc": "A game-function card.",
    "detail": "Exchange your hand with any other player."
  }
]`)
