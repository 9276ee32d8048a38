package ldclump

// Twenty-five variants over 250 samples, packed 2 bits per sample, and their
// pairwise haplotype r² as reported by PLINK 1.9 for the same calls.

const fixtureSamples = 250

var fixtureWords = [][]uint64{
	{18442170087889698815, 18445547801835994110, 13470264286370594747, 13830554451359760127,
		18446744073709535231, 18139162224121282475, 18427599012157718527, 4499201245315071},
	{18446744069413519359, 13817043639324360703, 18446744073709547515, 17293752196063559679,
		18369901405063348223, 18442240473746636799, 18374686479666346943, 4503599610523644},
	{18446744073709551615, 18410715241793961983, 18446744073709551611, 17293752200358526975,
		18302628885625307135, 18442240473746636799, 18374686479665330047, 4503599627362301},
	{18437596101935628287, 18301362246089440125, 8790990188667994041, 9214364832768062943,
		17868031521323859967, 18409448569970752875, 6898381474990915581, 2247401163193855},
	{18428725277136780287, 18338657647755984895, 18446743781651513343, 17293822551922835387,
		18298125011120029695, 17293822569102442494, 18442161030002833271, 4186665396461565},
	{18446744065118535679, 9223371899415822335, 18446744073709543423, 18446744065119617023,
		17870001846429417471, 18446744073709551615, 9223369837831520247, 4501400587197951},
	{15775809120453242858, 17000999510312927118, 18374629093472713466, 14679763081484022446,
		12371387896928185022, 18422748331592428479, 17148506438322268907, 4485988847860479},
	{15762316914735376559, 12664051714702175231, 13816972188210671599, 18302536440487866099,
		17221360061636411386, 17577267572954627003, 18428659305042407423, 4502203762208767},
	{18442239357323313151, 18446462581552971775, 13834987407365111807, 18445336680571322366,
		18374667787906838527, 13826895280953278206, 18158513696345620159, 3360107533369343},
	{18078573256838408637, 16980305538350514153, 4233283777687644886, 4591977148665707496,
		11397779609568849871, 12583688906873548294, 9498091266898722482, 3146368150055678},
	{18369901405017209855, 18445618173802692607, 13835058050987196415, 18446744072635809791,
		13762999361665429247, 18440827601640487935, 18063938105382731519, 4486007441260223},
	{18374683176773353471, 18158213462163914479, 3454260913923616750, 18086385733701991358,
		18373541887794470654, 17288967057034952702, 18140428930304179391, 4204253287460591},
	{3668942357107026666, 16924536989979019483, 4593305753104657390, 12267509324945799932,
		17188806748070183470, 13511637314131129023, 18067891123399609036, 258572277154346},
	{12965568656720260846, 18445313321250818271, 18428443518707941375, 12303548307824688126,
		18441957538547057343, 13524305200268442559, 18356302095499389902, 844114568127414},
	{18441111206846263022, 4607177539649010655, 17270178597960678394, 18373066830055927743,
		12681907573066825727, 13474466619882192634, 17270178648241995707, 4414448923820030},
	{9221100445829693439, 13834899588168679391, 6773413285512343423, 18446744069414584060,
		17221729515814649855, 17869720371452674047, 13474629207998848511, 4502912357039607},
	{16140901064493760511, 18446741874685247487, 18446744073642442751, 18446744073709543423,
		16140901064495857663, 18446744073709027327, 18446744065119617023, 4503599618965503},
	{5781186985329477864, 9469591116002290922, 10351464610450335423, 12365205330319739352,
		18298240404661235245, 13513568426446764970, 13322431077835221544, 2797977813398330},
	{9852446546031561450, 14099363035860889323, 12658469273848496895, 12393359699976424696,
		16140526900416802749, 18424466778072235950, 17940913933917236010, 3371922867502010},
	{9852446546031561450, 14099363035861413611, 12658469273848496895, 12393359699976424696,
		16140526900416802751, 18424501962444324782, 17940915033428863786, 3371922867502010},
	{18438350602459851562, 13833803302777273258, 11722495927086136936, 12461172657580850878,
		12587274727898983150, 18212538453600221866, 11749393052362518438, 3025764388433151},
	{18446735277616529407, 8644518609810358271, 18446743515363803007, 18445609377692907487,
		18444492273895866365, 13834486171255176159, 18446744073709551607, 4362862139015159},
	{12605481825216686771, 3074449894329150255, 18423076802364437503, 12603370624329089195,
		16987223901729491503, 1134617932587511486, 18082211967134786474, 994215688027112},
	{12609986593074113211, 3146586721990864703, 18423076733377835775, 12675393231563423915,
		16968362741827807791, 268803086656143038, 18082774917089059755, 712740712430568},
	{18439988535738890223, 18085325805566558139, 18446672579682889655, 17221474617692839935,
		9199831349005905655, 18442064169902481407, 12681709179887320059, 3940649404460971},
}

// fixtureR2[i][j-i-1] is the r² between variants i and j, j > i.
var fixtureR2 = [][]float64{
	{0.00705706, 8.25051e-05, 0.869208, 0.00686877, 0.00073069, 0.00345443,
		0.0100207, 0.00211663, 1.45889e-07, 0.00387006, 0.00467646, 0.00468954,
		0.0280082, 0.00302556, 0.000453581, 0.0194231, 0.0108011, 2.28884e-05,
		7.52391e-07, 0.0108969, 0.0012063, 0.0126075, 0.0011813, 0.000398434},
	{0.463584, 0.00032086, 8.12926e-05, 0.124849, 0.00135782, 0.00369563,
		0.000821607, 0.0189643, 0.000908419, 0.00585438, 0.00206017, 5.6656e-05,
		2.65473e-05, 0.0375419, 0.000400946, 0.00060244, 0.000307863, 0.000537844,
		0.00567913, 0.000738677, 0.0140538, 0.00720283, 0.00241562},
	{0.00708749, 3.37567e-06, 0.000134532, 0.0254002, 0.00184015, 0.00095259,
		0.0108972, 0.012938, 0.000153869, 1.07897e-06, 0.000185779, 1.70306e-05,
		0.000600025, 0.000128722, 0.00103383, 0.000397182, 0.000537933, 0.000555104,
		0.000218873, 0.000833924, 0.000156628, 0.00382635},
	{0.00433979, 0.000475662, 2.65642e-05, 0.0147727, 0.00162085, 0.00584206,
		0.000498812, 0.00952959, 0.00510422, 0.017757, 0.00120438, 0.000147996,
		0.0483882, 0.000162714, 3.30593e-07, 1.08239e-05, 0.000195329, 0.000748873,
		0.00270667, 0.000333945, 0.0115114},
	{0.000428388, 0.00244211, 0.000749016, 0.000140048, 0.000216645, 0.00124009,
		0.00226869, 0.00130548, 0.000183332, 0.0127571, 0.00233217, 0.000364612,
		0.000108704, 0.00124302, 0.00210372, 0.000713404, 0.000695451, 1.37666e-05,
		4.57406e-05, 0.0175809},
	{0.0024028, 0.00765518, 0.000630391, 0.00278461, 0.000480837, 0.000678662,
		0.00012805, 0.00631305, 0.00121022, 0.000155836, 2.91741e-05, 0.00523573,
		0.00143958, 0.00153082, 0.00377626, 8.18853e-05, 0.010524, 0.000431883,
		0.00293981},
	{0.0795832, 0.000252209, 0.000474542, 0.0178657, 0.00058133, 0.00832827,
		0.0018056, 0.00389549, 0.0127971, 0.0169584, 0.00117003, 0.0138285,
		0.0145286, 0.000610465, 0.000432053, 0.00565314, 0.000183333, 0.00267062},
	{0.0017669, 0.0036826, 0.0103827, 0.000323086, 7.28988e-05, 0.000453638,
		0.00770146, 3.28142e-05, 0.00129579, 0.00157305, 0.00105965, 0.00135376,
		0.000479892, 0.00237935, 0.00429054, 0.000221496, 0.00352185},
	{0.165376, 0.108067, 0.0603994, 0.019895, 0.00304625, 0.00234829,
		0.0133956, 0.000613465, 0.000428748, 0.00096222, 0.00146483, 0.0147593,
		0.0308371, 4.8138e-05, 0.00045609, 2.83599e-05},
	{0.00671866, 0.00325741, 0.000586781, 0.021079, 0.00741339, 0.00334468,
		0.00174926, 0.000974137, 0.000193834, 3.53975e-06, 0.00566243, 0.00481355,
		0.00236841, 0.00232721, 0.00193259},
	{0.0314197, 0.0487867, 0.00425902, 0.0156533, 0.0169826, 0.000486181,
		0.0036046, 0.00287051, 0.00359979, 0.00083021, 0.000840114, 0.000197257,
		0.00604646, 0.00118779},
	{0.00804237, 0.00440814, 0.00439695, 0.0142788, 0.000564222, 0.000255027,
		0.000678519, 0.000576047, 0.000571833, 0.00158181, 0.0128451, 0.0112256,
		0.00402716},
	{0.329282, 0.167898, 0.00347854, 0.00508578, 0.00129964, 0.00235573,
		0.00343596, 0.00870026, 0.00306371, 0.00065356, 0.00213083, 0.000799123},
	{0.0541335, 0.00254042, 0.00442473, 0.0134384, 0.00748566, 0.0101635,
		0.0239318, 0.00704692, 0.00560485, 0.00725533, 4.35485e-05},
	{8.45257e-06, 0.031006, 0.00207938, 1.69202e-05, 7.95587e-05, 0.0045795,
		0.000454487, 0.0167655, 0.00776411, 0.00257797},
	{0.000291971, 0.0051839, 0.0156142, 0.0167249, 0.00739164, 0.000511542,
		0.00378172, 0.00454379, 0.00626462},
	{0.00780713, 0.0123197, 0.0126044, 0.00377358, 7.89079e-05, 0.000861412,
		0.00144782, 0.000990366},
	{0.473426, 0.462547, 0.185714, 0.0113906, 0.015925, 0.0328072,
		0.011591},
	{0.982085, 0.085499, 0.00585377, 0.031135, 0.0430971, 0.000328091},
	{0.0894888, 0.00567435, 0.0371009, 0.0496297, 0.000742627},
	{0.00698486, 0.0411259, 0.078337, 0.00819144},
	{9.4607e-05, 0.000500084, 0.00171468},
	{0.637221, 0.00036831},
	{0.0286916},
}
