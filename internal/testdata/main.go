package testdata

// Chart is a two-difficulty StepMania chart at 120 bpm with a BPM change to
// 240 at beat 8.
const Chart = `#TITLE:Fixture;
#ARTIST:tapline;
#OFFSET:-0.500;
#BPMS:0.000=120.000,
8.000=240.000;
#NOTES:
     dance-single:
     :
     Beginner:
     1:
     0.1,0.1,0.1,0.1,0.1:
// measure 1
1000
0100
0000
M000
,  // measure 2
0010
0000
0001
0000
,  // measure 3
3000
0000
0000
0000
;
#NOTES:
     dance-double:
     :
     Hard:
     9:
     0.1,0.1,0.1,0.1,0.1:
10000000
;
#NOTES:
     pump-single:
     :
     Hard:
     3:
     0.1,0.1,0.1,0.1,0.1:
10000
;
`

// Empty has notes only in an unsupported mode.
const Empty = `#OFFSET:0;
#BPMS:0=120;
#NOTES:
     pump-single:
     :
     Hard:
     3:
     0.1,0.1,0.1,0.1,0.1:
10000
;
`
